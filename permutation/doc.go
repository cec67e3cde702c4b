// Package permutation builds the 512-entry lookup table that assigns
// pseudo-random gradients to integer lattice points.
//
// What is a permutation table?
//
//	A shuffled copy of 0..255, stored twice in a row. Samplers hash a lattice
//	point with chained lookups such as p[p[x]+y]. Because the upper half
//	mirrors the lower half, an index built from a masked coordinate plus a
//	small offset never needs a modulo wraparound.
//
// Lifecycle:
//
//	t := permutation.Identity()                 // 0..255, 0..255
//	t.Shuffle(permutation.NewRand(42))          // in-place Fisher–Yates, mirrored
//	v := t.Get(300)                             // read-only from now on
//
// Invariants (checked by Validate):
//   - len == 512, every value in [0,255] appears exactly twice;
//   - t[i+256] == t[i] for i in [0,256).
//
// Determinism:
//
//	The random source is always injected (*rand.Rand). NewRand(seed) gives a
//	reproducible stream; seed 0 maps to a fixed default seed. Nothing in this
//	package reads a global or time-based source.
//
// Fixtures:
//
//	Tables can be exported and imported as YAML (MarshalYAML/UnmarshalYAML,
//	gopkg.in/yaml.v3) or as 256 raw bytes (WriteTo/ReadFrom). Imports are
//	validated; a corrupt fixture is rejected with a sentinel error.
//
// Concurrency:
//
//	A *Table is not synchronized. Build it (Init/Shuffle) before sharing;
//	concurrent Get calls on a table nobody mutates are safe.
package permutation
