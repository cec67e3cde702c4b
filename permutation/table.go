package permutation

import (
	"fmt"
	"math/rand"
)

// Identity returns the unshuffled table 0..255, 0..255.
// Complexity: O(Size).
func Identity() *Table {
	t := &Table{}
	t.Init()
	return t
}

// NewShuffled returns an identity table shuffled with rng.
// rng==nil uses the default deterministic stream.
// Complexity: O(Size).
func NewShuffled(rng *rand.Rand) *Table {
	t := Identity()
	t.Shuffle(rng)
	return t
}

// FromSeed is NewShuffled(NewRand(seed)).
func FromSeed(seed int64) *Table {
	return NewShuffled(NewRand(seed))
}

// Init resets t to the identity sequence, discarding any prior shuffle.
// Idempotent.
func (t *Table) Init() {
	for i := 0; i < HalfSize; i++ {
		t.p[i] = i
	}
	t.mirror()
}

// Shuffle permutes the base half in place and mirrors it into the upper half.
// The permutation is uniform for a uniform rng. Calling Shuffle on an already
// shuffled table is allowed and yields another uniform permutation.
// Complexity: O(HalfSize) time, no allocations.
func (t *Table) Shuffle(rng *rand.Rand) {
	shuffleInPlace(t.p[:HalfSize], rng)
	t.mirror()
}

// Get returns the entry at i. Callers guarantee 0 <= i < Size; the samplers
// build every index from a value masked to [0,255] plus at most 256.
func (t *Table) Get(i int) int {
	return t.p[i]
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	c := *t
	return &c
}

// Equal reports whether t and other hold the same entries.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.p == other.p
}

// Values returns a copy of the base permutation (entries 0..255).
func (t *Table) Values() []int {
	out := make([]int, HalfSize)
	copy(out, t.p[:HalfSize])
	return out
}

// FromValues builds a table from an exported permutation.
//
// vals may hold either the 256-entry base permutation or all 512 entries; in
// the latter case the upper half must mirror the lower one.
//
// Errors: ErrBadLength, ErrValueRange, ErrNotPermutation, ErrHalvesDiffer.
// Complexity: O(len(vals)).
func FromValues(vals []int) (*Table, error) {
	if len(vals) != HalfSize && len(vals) != Size {
		return nil, fmt.Errorf("FromValues: got %d entries: %w", len(vals), ErrBadLength)
	}
	if err := checkBase(vals[:HalfSize]); err != nil {
		return nil, fmt.Errorf("FromValues: %w", err)
	}
	if len(vals) == Size {
		for i := 0; i < HalfSize; i++ {
			if vals[i+HalfSize] != vals[i] {
				return nil, fmt.Errorf("FromValues: index %d: %w", i+HalfSize, ErrHalvesDiffer)
			}
		}
	}

	t := &Table{}
	copy(t.p[:HalfSize], vals[:HalfSize])
	t.mirror()
	return t, nil
}

// Validate checks the table invariant: the base half is a permutation of
// 0..255 and the upper half mirrors it.
func (t *Table) Validate() error {
	if err := checkBase(t.p[:HalfSize]); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	for i := 0; i < HalfSize; i++ {
		if t.p[i+HalfSize] != t.p[i] {
			return fmt.Errorf("Validate: index %d: %w", i+HalfSize, ErrHalvesDiffer)
		}
	}
	return nil
}

// checkBase verifies that base is a permutation of 0..255.
func checkBase(base []int) error {
	var seen [HalfSize]bool
	for i, v := range base {
		if v < 0 || v > MaxValue {
			return fmt.Errorf("index %d value %d: %w", i, v, ErrValueRange)
		}
		if seen[v] {
			return fmt.Errorf("value %d repeated at index %d: %w", v, i, ErrNotPermutation)
		}
		seen[v] = true
	}
	return nil
}

// mirror copies the base half into the upper half.
func (t *Table) mirror() {
	copy(t.p[HalfSize:], t.p[:HalfSize])
}
