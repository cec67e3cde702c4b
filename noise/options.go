package noise

import (
	"math/rand"

	"github.com/katalvlaran/perlin/permutation"
)

// WithSeed seeds the Generator's random source. Seed 0 maps to the package
// default stream of permutation.NewRand. Generators derived with WithConfig
// and friends get streams mixed from this seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = permutation.NewRand(seed)
		o.seed, o.seeded = seed, true
	}
}

// WithRand sets the Generator's random source. Panics on nil.
// The Generator takes ownership: do not use r from other goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("noise: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
		o.seed, o.seeded = 0, false
	}
}

// WithTable makes New use a copy of t instead of shuffling a fresh table,
// e.g. a fixture loaded with permutation.FromValues. Panics on nil.
//
// The table is not shuffled. Calling Shuffle later permutes a copy.
func WithTable(t *permutation.Table) Option {
	if t == nil {
		panic("noise: WithTable(nil)")
	}
	return func(o *options) {
		o.table = t.Clone()
	}
}

// newOptions applies opts over deterministic defaults.
func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = permutation.NewRand(0)
		o.seed, o.seeded = 0, true
	}
	return o
}
