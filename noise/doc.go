// Package noise samples Perlin-style gradient noise in one, two and three
// dimensions and composes it into multi-octave (fractal) noise.
//
// 🚀 What is gradient noise?
//
//	Every integer lattice point gets a pseudo-random gradient from a
//	permutation table. A sample point takes the dot product of each
//	surrounding corner's gradient with the offset from that corner, then
//	blends the corner values with a quintic fade curve. The result is a
//	smooth, continuous and fully reproducible field.
//
// ✨ Key features:
//   - Noise1D/2D/3D: single octave, normalized to [0,1]
//   - Octaves1D/2D/3D: frequency doubles, amplitude decays by Persistence,
//     result is the amplitude-weighted mean (within [0,1] for
//     Persistence ≥ 0)
//   - Sample1D/2D/3D: raw values in [−√n, √n] for callers who want them
//   - injectable randomness (WithSeed / WithRand) and fixture tables
//     (WithTable) for reproducible tests
//
// ⚙️ Usage:
//
//	g, err := noise.New(noise.DefaultConfig(), noise.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	h, err := g.Octaves2D(float64(x), float64(y), 6)
//
// Configuration:
//
//	Config{Frequency: 0.003, Persistence: 0.65} by default. A Generator's
//	configuration never changes after construction; WithFrequency,
//	WithPersistence and WithConfig return a derived Generator sharing the
//	same read-only table. Persistence ≥ 1 is accepted and simply stops the
//	octave weights from decaying. A negative Persistence is accepted too, but
//	its alternating-sign weights void the [0,1] bound on octave results.
//
// Errors:
//   - ErrNonFinite       - Frequency or Persistence is NaN or ±Inf, or an
//     octave call whose first scaled coordinate overflows.
//   - ErrInvalidOctaves  - an octave count below 1 (never divides by zero).
//   - ErrZeroAmplitude   - octave weights summing to zero (negative persistence).
//   - ErrNotInitialized  - octave call on a Generator that was not built by New.
//
// Concurrency:
//
//	Sampling only reads the table, so one Generator may be shared by many
//	goroutines. Init and Shuffle swap in a new table and consume the
//	Generator's *rand.Rand; they need exclusive access to that Generator.
//	Tables are never modified once a Generator holds them, and each derived
//	Generator owns a random source seeded from its parent's seed, so parent
//	and derived Generators rebuild independently and may do so concurrently.
//
// Performance:
//
//	Noise1D/2D/3D are O(1) with no allocations; OctavesND is O(n).
package noise
