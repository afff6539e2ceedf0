// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Write encodes r as a YAML document with two-space indentation.
func Write(w io.Writer, r *Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}

	return enc.Close()
}
