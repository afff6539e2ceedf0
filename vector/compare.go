// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Formatting tokens for String.
const (
	_fmtOpen  = "("
	_fmtSep   = ", "
	_fmtClose = ")"
)

// Equal reports exact component equality.
func (v Vector[S, D]) Equal(b Vector[S, D]) bool {
	for i := 0; i < len(v.data); i++ {
		if v.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether every component satisfies
// |v[i]-b[i]| <= eps + rtol*|b[i]| under the scalar options
// (defaults: scalar.DefaultEpsilon, scalar.DefaultRelativeTolerance).
func (v Vector[S, D]) ApproxEqual(b Vector[S, D], opts ...scalar.Option) bool {
	o := scalar.Resolve(opts...)
	for i := 0; i < len(v.data); i++ {
		if !scalar.Close(v.data[i], b.data[i], o) {
			return false
		}
	}

	return true
}

// String renders the vector as "(x, y, z)".
func (v Vector[S, D]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < len(v.data); i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, v.data[i])
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
