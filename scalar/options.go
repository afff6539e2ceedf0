// SPDX-License-Identifier: MIT

// Package scalar: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Resolve, the single place where defaults and setters are combined.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package scalar

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by approximate comparisons.
	DefaultEpsilon = 1e-9

	// DefaultRelativeTolerance is the relative tolerance (scaled by |b|).
	// Zero keeps comparisons purely absolute unless a caller opts in.
	DefaultRelativeTolerance = 0.0
)

const (
	panicEpsilonInvalid = "scalar: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "scalar: WithRelativeTolerance: rtol must be finite, non-negative"
)

// Option mutates Options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options is the effective numeric policy after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	atol float64 // >= 0; DefaultEpsilon
	rtol float64 // >= 0; DefaultRelativeTolerance
}

// WithEpsilon sets the absolute tolerance.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter writing eps into Options.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.atol = eps }
}

// WithRelativeTolerance sets the relative tolerance applied as rtol*|b|.
func WithRelativeTolerance(rtol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithExact sets both tolerances to zero, turning approximate comparisons into
// exact equality. Useful for integer scalars.
func WithExact() Option {
	return func(o *Options) {
		o.atol = 0
		o.rtol = 0
	}
}

// Resolve applies setters on top of the documented defaults.
// Complexity: O(len(opts)).
func Resolve(opts ...Option) Options {
	o := Options{
		atol: DefaultEpsilon,
		rtol: DefaultRelativeTolerance,
	}
	for _, set := range opts {
		set(&o) // apply in order; last-writer-wins
	}

	return o
}

// Epsilon returns the absolute tolerance.
func (o Options) Epsilon() float64 { return o.atol }

// RelativeTolerance returns the relative tolerance.
func (o Options) RelativeTolerance() float64 { return o.rtol }

// Close reports whether |a-b| <= atol + rtol*|b| under the policy o.
// NaN is never close to anything, matching IEEE comparison semantics.
// Complexity: O(1).
func Close[S Scalar](a, b S, o Options) bool {
	fa, fb := float64(a), float64(b)
	if a == b {
		return true // exact hit, also covers equal infinities
	}
	diff := math.Abs(fa - fb)

	return diff <= o.atol+o.rtol*math.Abs(fb)
}
