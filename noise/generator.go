package noise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/perlin/permutation"
)

// New builds a Generator with configuration cfg.
//
// Unless WithTable is given, the table is the identity permutation shuffled
// with the resolved random source (WithSeed / WithRand, default seed 0).
//
// Errors: ErrNonFinite.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNew, err)
	}
	o := newOptions(opts...)

	g := &Generator{cfg: cfg, rng: o.rng, table: o.table, seed: o.seed}
	if g.table == nil {
		g.table = permutation.NewShuffled(g.rng)
	}
	if !o.seeded {
		// Caller-supplied source: draw the derivation seed once, after the
		// table so the table matches a plain Shuffle with that source.
		g.seed = g.rng.Int63()
	}
	return g, nil
}

// Validate reports ErrNonFinite when Frequency or Persistence is NaN or ±Inf.
func (c Config) Validate() error {
	if !isFinite(c.Frequency) {
		return fmt.Errorf("frequency %v: %w", c.Frequency, ErrNonFinite)
	}
	if !isFinite(c.Persistence) {
		return fmt.Errorf("persistence %v: %w", c.Persistence, ErrNonFinite)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Config returns the Generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Frequency returns the base-octave coordinate scale.
func (g *Generator) Frequency() float64 { return g.cfg.Frequency }

// Persistence returns the per-octave amplitude decay.
func (g *Generator) Persistence() float64 { return g.cfg.Persistence }

// WithConfig returns a Generator with cfg that shares g's read-only table.
//
// The derived Generator gets its own random source, seeded with
// permutation.DeriveSeed(seed, depth), so its Shuffle calls never advance or
// race with g's source. Deriving is deterministic and leaves g unchanged.
func (g *Generator) WithConfig(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodWithConfig, err)
	}
	d := *g
	d.cfg = cfg
	d.depth = g.depth + 1
	d.seed = permutation.DeriveSeed(g.seed, d.depth)
	d.rng = permutation.NewRand(d.seed)
	return &d, nil
}

// WithFrequency returns a Generator whose base frequency is f.
func (g *Generator) WithFrequency(f float64) (*Generator, error) {
	cfg := g.cfg
	cfg.Frequency = f
	d, err := g.WithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodWithFrequency, err)
	}
	return d, nil
}

// WithPersistence returns a Generator whose amplitude decay is p.
// p ≥ 1 is accepted; octave weights then stop shrinking.
func (g *Generator) WithPersistence(p float64) (*Generator, error) {
	cfg := g.cfg
	cfg.Persistence = p
	d, err := g.WithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodWithPersistence, err)
	}
	return d, nil
}

// Init replaces the table with the identity permutation. Noise sampled
// afterwards is no longer reproducible against the previous table.
func (g *Generator) Init() {
	g.table = permutation.Identity()
}

// Shuffle replaces the table with a shuffled copy of the current one.
// The old table is left intact for any Generator derived from g.
func (g *Generator) Shuffle() {
	if g.table == nil {
		g.table = permutation.Identity()
	}
	t := g.table.Clone()
	t.Shuffle(g.rng)
	g.table = t
}

// Table returns a copy of the permutation table, e.g. for fixtures.
// It returns nil for a Generator not built by New.
func (g *Generator) Table() *permutation.Table {
	if g.table == nil {
		return nil
	}
	return g.table.Clone()
}

// Noise1D returns single-octave noise at x in [0,1].
// Coordinates are not scaled by Frequency.
func (g *Generator) Noise1D(x float64) float64 {
	return clamp01(Normalize(Sample1D(g.table, x), 1))
}

// Noise2D returns single-octave noise at (x, y) in [0,1].
func (g *Generator) Noise2D(x, y float64) float64 {
	return clamp01(Normalize(Sample2D(g.table, x, y), 2))
}

// Noise3D returns single-octave noise at (x, y, z) in [0,1].
func (g *Generator) Noise3D(x, y, z float64) float64 {
	return clamp01(Normalize(Sample3D(g.table, x, y, z), 3))
}
