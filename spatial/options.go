// SPDX-License-Identifier: MIT

// Package spatial: functional configuration of a Grid.
package spatial

import (
	"crypto/rand"
	"io"

	"github.com/katalvlaran/lvgeom/scalar"
)

// DefaultMaxCellsPerEntry bounds how many buckets a single entry may occupy
// before it moves to the overflow list.
const DefaultMaxCellsPerEntry = 4096

const panicMaxCellsInvalid = "spatial: WithMaxCellsPerEntry: n must be >= 1"

// Option mutates Options. Last writer wins.
type Option func(*Options)

// Options is the effective Grid configuration.
type Options struct {
	numeric  scalar.Options
	maxCells int
	entropy  io.Reader
}

// WithNumeric sets the numeric policy. Its epsilon is the smallest cell size
// NewGrid accepts.
func WithNumeric(opts ...scalar.Option) Option {
	numeric := scalar.Resolve(opts...)

	return func(o *Options) { o.numeric = numeric }
}

// WithMaxCellsPerEntry sets the overflow threshold. Panics if n < 1.
func WithMaxCellsPerEntry(n int) Option {
	if n < 1 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) { o.maxCells = n }
}

// WithEntropy sets the source of randomness for entry ids (crypto/rand by
// default). A seeded reader makes ids reproducible in tests.
func WithEntropy(r io.Reader) Option {
	return func(o *Options) { o.entropy = r }
}

func resolve(opts ...Option) Options {
	o := Options{
		numeric:  scalar.Resolve(),
		maxCells: DefaultMaxCellsPerEntry,
		entropy:  rand.Reader,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// MaxCellsPerEntry returns the overflow threshold.
func (o Options) MaxCellsPerEntry() int { return o.maxCells }
