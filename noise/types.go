package noise

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/perlin/permutation"
)

// Method names used as error context.
const (
	MethodNew             = "New"
	MethodWithFrequency   = "WithFrequency"
	MethodWithPersistence = "WithPersistence"
	MethodWithConfig      = "WithConfig"
	MethodOctaves1D       = "Octaves1D"
	MethodOctaves2D       = "Octaves2D"
	MethodOctaves3D       = "Octaves3D"
)

// Defaults for Config.
const (
	DefaultFrequency   = 0.003
	DefaultPersistence = 0.65
)

var (
	// ErrNonFinite indicates a NaN or infinite configuration value, or a
	// coordinate that overflows once scaled by Frequency.
	ErrNonFinite = errors.New("noise: value must be finite")

	// ErrInvalidOctaves indicates an octave count below 1.
	ErrInvalidOctaves = errors.New("noise: octave count must be at least 1")

	// ErrZeroAmplitude indicates octave weights that sum to zero, which only
	// a negative persistence can produce.
	ErrZeroAmplitude = errors.New("noise: octave amplitudes sum to zero")

	// ErrNotInitialized indicates a Generator without a permutation table.
	ErrNotInitialized = errors.New("noise: generator has no permutation table; use New")
)

// Config holds the fractal parameters of a Generator.
//
// Fields:
//   - Frequency   - scale applied to input coordinates for the first octave;
//     each further octave doubles it.
//   - Persistence - amplitude decay per octave (< 1 for diminishing detail).
//     Any finite value is accepted; a negative one voids the [0,1] bound of
//     octave results.
type Config struct {
	Frequency   float64
	Persistence float64
}

// DefaultConfig returns Config{Frequency: 0.003, Persistence: 0.65}.
func DefaultConfig() Config {
	return Config{
		Frequency:   DefaultFrequency,
		Persistence: DefaultPersistence,
	}
}

// Generator samples noise against one permutation table.
//
// The zero value has no table; build Generators with New.
type Generator struct {
	cfg   Config
	table *permutation.Table
	rng   *rand.Rand

	// seed and depth name this Generator's stream; derived Generators mix
	// them with permutation.DeriveSeed instead of sharing rng.
	seed  int64
	depth uint64
}

// Option customizes New.
type Option func(*options)

// options is resolved by New; later options override earlier ones.
type options struct {
	rng   *rand.Rand
	table *permutation.Table

	// seed is meaningful only when seeded; WithRand clears it.
	seed   int64
	seeded bool
}
