// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvgeom/aabb"
	"github.com/katalvlaran/lvgeom/internal/logging"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
)

// Result is the evaluated scene, shaped for YAML output.
type Result struct {
	Dimensions int         `yaml:"dimensions"`
	Operations []OpResult  `yaml:"operations,omitempty"`
	Points     [][]float64 `yaml:"points,omitempty,flow"`
}

// OpResult is the outcome of one Operation. Count is the number of boxes,
// edges or corners produced; Overlaps is set only for the overlaps operation.
type OpResult struct {
	Op       string      `yaml:"op"`
	A        string      `yaml:"a"`
	B        string      `yaml:"b,omitempty"`
	Count    int         `yaml:"count"`
	Overlaps *bool       `yaml:"overlaps,omitempty"`
	Boxes    []BoxSpec   `yaml:"boxes,omitempty"`
	Edges    []EdgeSpec  `yaml:"edges,omitempty"`
	Corners  [][]float64 `yaml:"corners,omitempty,flow"`
}

// EdgeSpec is one box edge.
type EdgeSpec struct {
	Start  []float64 `yaml:"start,flow"`
	Finish []float64 `yaml:"finish,flow"`
}

// Evaluate validates d and runs its operations and transform in order.
// A nil logger disables logging.
func Evaluate(d *Document, log *zap.Logger) (*Result, error) {
	log = logging.OrNop(log)
	dims, err := d.Validate()
	if err != nil {
		return nil, err
	}
	log.Debug("scene validated",
		zap.Int("dimensions", dims),
		zap.Int("boxes", len(d.Boxes)),
		zap.Int("operations", len(d.Operations)))

	var res *Result
	switch dims {
	case 1:
		res, err = evaluate[[1]float64](d, log)
	case 2:
		res, err = evaluate[[2]float64](d, log)
	case 3:
		res, err = evaluate[[3]float64](d, log)
	case 4:
		res, err = evaluate[[4]float64](d, log)
	case 5:
		res, err = evaluate[[5]float64](d, log)
	case 6:
		res, err = evaluate[[6]float64](d, log)
	case 7:
		res, err = evaluate[[7]float64](d, log)
	default:
		res, err = evaluate[[8]float64](d, log)
	}
	if err != nil {
		return nil, err
	}
	res.Dimensions = dims

	if d.Transform != nil {
		res.Points = transform(d.Transform)
		log.Debug("points transformed", zap.Int("points", len(res.Points)))
	}

	return res, nil
}

func evaluate[D vector.Dim[float64]](d *Document, log *zap.Logger) (*Result, error) {
	boxes := make(map[string]aabb.Box[float64, D], len(d.Boxes))
	for _, spec := range d.Boxes {
		lo, err := vector.FromSlice[float64, D](spec.Min)
		if err != nil {
			return nil, fmt.Errorf("box %q: min: %w", spec.Name, err)
		}
		hi, err := vector.FromSlice[float64, D](spec.Max)
		if err != nil {
			return nil, fmt.Errorf("box %q: max: %w", spec.Name, err)
		}
		b := aabb.New(lo, hi)
		if err = b.Validate(); err != nil {
			log.Warn("inverted box", zap.String("box", spec.Name), zap.Stringer("bounds", b))
		}
		boxes[spec.Name] = b
	}

	res := &Result{Operations: make([]OpResult, 0, len(d.Operations))}
	for _, op := range d.Operations {
		a, b := boxes[op.A], boxes[op.B]
		out := OpResult{Op: op.Op, A: op.A, B: op.B}
		switch op.Op {
		case OpDifference:
			for i, s := range aabb.Difference(a, b) {
				out.Boxes = append(out.Boxes, boxSpec(fmt.Sprintf("%s-%s.%d", op.B, op.A, i), s))
			}
			out.Count = len(out.Boxes)
		case OpIntersection:
			if in := aabb.Intersection(a, b); !in.IsEmpty() {
				out.Boxes = []BoxSpec{boxSpec(op.A+"&"+op.B, in)}
				out.Count = 1
			}
		case OpOverlaps:
			ov := a.Overlaps(b)
			out.Overlaps = &ov
		case OpEdges:
			for _, e := range aabb.GatherEdges(a) {
				out.Edges = append(out.Edges, EdgeSpec{Start: e.Start.Slice(), Finish: e.Finish.Slice()})
			}
			out.Count = len(out.Edges)
		case OpCorners:
			for _, c := range aabb.Corners(a) {
				out.Corners = append(out.Corners, c.Slice())
			}
			out.Count = len(out.Corners)
		}
		log.Debug("operation done",
			zap.String("op", op.Op),
			zap.String("a", op.A),
			zap.String("b", op.B),
			zap.Int("count", out.Count))
		res.Operations = append(res.Operations, out)
	}

	return res, nil
}

func boxSpec[D vector.Dim[float64]](name string, b aabb.Box[float64, D]) BoxSpec {
	return BoxSpec{Name: name, Min: b.Min().Slice(), Max: b.Max().Slice()}
}

// Matrix returns the 4×4 transform described by t.
func (t *Transform) Matrix() *matrix.Matrix4[float64] {
	m := matrix.Identity[float64, [4]float64]()
	if t.Scale != nil {
		s := matrix.New[float64, [4]float64, [4]float64]()
		// lengths are checked by Validate
		_ = matrix.BecomeScaleHomogeneous(s, vector.Vec3(t.Scale[0], t.Scale[1], t.Scale[2]))
		m = matrix.Mul(m, s)
	}
	if t.RotateX != 0 || t.RotateY != 0 || t.RotateZ != 0 {
		m = matrix.Mul(m, matrix.RotationFromEuler(t.RotateX, t.RotateY, t.RotateZ))
	}
	if t.Translate != nil {
		m = matrix.Mul(m, matrix.Translation4(vector.Vec3(t.Translate[0], t.Translate[1], t.Translate[2])))
	}

	return m
}

func transform(t *Transform) [][]float64 {
	m := t.Matrix()
	out := make([][]float64, len(t.Points))
	for i, p := range t.Points {
		out[i] = matrix.TransformPoint(m, vector.Vec3(p[0], p[1], p[2])).Slice()
	}

	return out
}
