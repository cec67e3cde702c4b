// Package perlin is a deterministic gradient-noise toolkit: Perlin-style
// noise in one, two and three dimensions, composited into fractal octaves.
//
// 🚀 What is perlin?
//
//	A small, allocation-free, pure-Go library for terrain heightmaps,
//	texture synthesis and animation curves:
//		• Permutation tables: seeded Fisher-Yates, doubled to 512 entries
//		• Gradient selection: 2 (1D), 4 (2D) and 8 (3D) corner directions
//		• Interpolation: quintic fade and exact-endpoint lerp
//		• Sampling: Noise1D/2D/3D normalized to [0,1]
//		• Fractal sums: Octaves1D/2D/3D with frequency and persistence
//
// ✨ Why choose perlin?
//
//   - Reproducible - every random choice flows from an injected *rand.Rand
//   - Fixture-friendly - tables import/export as YAML or 256 raw bytes
//   - Read-only sampling - one Generator can serve many goroutines
//   - No hidden state - configuration is a value, never a global
//
// Everything is organized under four subpackages:
//
//	permutation/ - the 512-entry lattice hash table, RNG helpers, fixtures
//	interp/      - Fade and Lerp
//	gradient/    - lattice hashing and gradient sets
//	noise/       - samplers, octave compositor and the Generator
//
// Quick start:
//
//	g, err := noise.New(noise.DefaultConfig(), noise.WithSeed(7))
//	if err != nil {
//	    return err
//	}
//	height, err := g.Octaves2D(float64(x), float64(y), 6)
//
//	go get github.com/katalvlaran/perlin
package perlin
