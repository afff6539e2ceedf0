// SPDX-License-Identifier: MIT

// Package scene decodes YAML scene documents and evaluates them with the
// geometry packages. A scene names a set of same-dimension boxes, a list of
// set-algebra operations over those names and an optional 3D point transform.
//
//	boxes:
//	  - {name: a, min: [0, 0], max: [5, 5]}
//	  - {name: b, min: [0, 0], max: [8, 8]}
//	operations:
//	  - {op: difference, a: a, b: b}
//	  - {op: edges, a: a}
//	transform:
//	  rotate_z: 1.5707963267948966
//	  translate: [1, 0, 0]
//	  points: [[1, 0, 0]]
package scene

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/vector"
)

var (
	// ErrEmptyDocument indicates an input with no YAML document.
	ErrEmptyDocument = errors.New("scene: empty document")

	// ErrNoBoxes indicates a scene without boxes.
	ErrNoBoxes = errors.New("scene: no boxes")

	// ErrDimension indicates a box whose bounds do not share one dimension
	// in [1, 8] with every other box.
	ErrDimension = errors.New("scene: bad dimension")

	// ErrDuplicateBox indicates two boxes with the same name.
	ErrDuplicateBox = errors.New("scene: duplicate box name")

	// ErrUnknownBox indicates an operation referring to an undeclared box.
	ErrUnknownBox = errors.New("scene: unknown box")

	// ErrUnknownOp indicates an unsupported operation name.
	ErrUnknownOp = errors.New("scene: unknown operation")

	// ErrBadTransform indicates a transform vector or point that is not 3D.
	ErrBadTransform = errors.New("scene: transform vectors must have 3 components")
)

// Operation names.
const (
	OpDifference   = "difference"
	OpIntersection = "intersection"
	OpEdges        = "edges"
	OpCorners      = "corners"
	OpOverlaps     = "overlaps"
)

// classify reports whether op is supported and whether it reads b.
func classify(op string) (known, needsB bool) {
	switch op {
	case OpDifference, OpIntersection, OpOverlaps:
		return true, true
	case OpEdges, OpCorners:
		return true, false
	default:
		return false, false
	}
}

// Document is a decoded scene.
type Document struct {
	Boxes      []BoxSpec   `yaml:"boxes"`
	Operations []Operation `yaml:"operations,omitempty"`
	Transform  *Transform  `yaml:"transform,omitempty"`
}

// BoxSpec is a named box. Min and Max must have equal length.
type BoxSpec struct {
	Name string    `yaml:"name"`
	Min  []float64 `yaml:"min,flow"`
	Max  []float64 `yaml:"max,flow"`
}

// Operation applies Op to the boxes named A and (for binary ops) B.
// For difference the result is B minus A.
type Operation struct {
	Op string `yaml:"op"`
	A  string `yaml:"a"`
	B  string `yaml:"b,omitempty"`
}

// Transform maps 3D points by scale, then Euler rotation (x, y, z), then
// translation, under the row-vector convention of package matrix.
type Transform struct {
	Scale     []float64   `yaml:"scale,omitempty,flow"`
	RotateX   float64     `yaml:"rotate_x,omitempty"`
	RotateY   float64     `yaml:"rotate_y,omitempty"`
	RotateZ   float64     `yaml:"rotate_z,omitempty"`
	Translate []float64   `yaml:"translate,omitempty,flow"`
	Points    [][]float64 `yaml:"points,omitempty,flow"`
}

// Load decodes one scene from r. Unknown keys are rejected.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("scene: decode: %w", err)
	}

	return &doc, nil
}

// Validate checks names, references and dimensions, and returns the common
// box dimension.
func (d *Document) Validate() (int, error) {
	if len(d.Boxes) == 0 {
		return 0, ErrNoBoxes
	}
	dims := len(d.Boxes[0].Min)
	names := make(map[string]struct{}, len(d.Boxes))
	for _, b := range d.Boxes {
		if _, dup := names[b.Name]; dup {
			return 0, fmt.Errorf("box %q: %w", b.Name, ErrDuplicateBox)
		}
		names[b.Name] = struct{}{}
		if len(b.Min) != dims || len(b.Max) != dims || dims < 1 || dims > vector.MaxDimensions {
			return 0, fmt.Errorf("box %q: min %d, max %d, want %d in [1, %d]: %w",
				b.Name, len(b.Min), len(b.Max), dims, vector.MaxDimensions, ErrDimension)
		}
	}

	for i, op := range d.Operations {
		known, needsB := classify(op.Op)
		if !known {
			return 0, fmt.Errorf("operation %d %q: %w", i, op.Op, ErrUnknownOp)
		}
		if _, ok := names[op.A]; !ok {
			return 0, fmt.Errorf("operation %d: a %q: %w", i, op.A, ErrUnknownBox)
		}
		if _, ok := names[op.B]; needsB && !ok {
			return 0, fmt.Errorf("operation %d: b %q: %w", i, op.B, ErrUnknownBox)
		}
	}

	if t := d.Transform; t != nil {
		if t.Scale != nil && len(t.Scale) != 3 {
			return 0, fmt.Errorf("scale: %w", ErrBadTransform)
		}
		if t.Translate != nil && len(t.Translate) != 3 {
			return 0, fmt.Errorf("translate: %w", ErrBadTransform)
		}
		for i, p := range t.Points {
			if len(p) != 3 {
				return 0, fmt.Errorf("point %d: %w", i, ErrBadTransform)
			}
		}
	}

	return dims, nil
}
