package permutation

import "errors"

const (
	// HalfSize is the number of distinct entries (0..255).
	HalfSize = 256

	// Size is the full table length: the base permutation stored twice.
	Size = 2 * HalfSize

	// MaxValue is the largest value a table may hold.
	MaxValue = HalfSize - 1
)

// Table is a doubled permutation of 0..255 used as a lattice hash.
//
// The zero value holds all zeros and violates the permutation invariant;
// construct tables with Identity, NewShuffled, FromSeed or FromValues.
type Table struct {
	p [Size]int
}

// Sentinel errors. Use errors.Is to branch on them; implementations attach
// context with %w.
var (
	// ErrBadLength indicates an import that is neither 256 nor 512 entries.
	ErrBadLength = errors.New("permutation: table must have 256 or 512 entries")

	// ErrValueRange indicates an entry outside [0,255].
	ErrValueRange = errors.New("permutation: value out of range [0,255]")

	// ErrNotPermutation indicates a repeated or missing value in the base half.
	ErrNotPermutation = errors.New("permutation: values are not a permutation of 0..255")

	// ErrHalvesDiffer indicates that entries 256..511 do not mirror 0..255.
	ErrHalvesDiffer = errors.New("permutation: upper half does not mirror lower half")
)
