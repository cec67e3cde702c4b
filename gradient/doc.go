// Package gradient assigns a fixed corner-direction vector to every integer
// lattice point.
//
// Selection is two steps:
//
//  1. Hash the lattice point with chained permutation lookups
//     (p[x], p[p[x]+y], p[p[p[x]+y]+z]).
//  2. Mask the hash to the size of the gradient set (1, 3, 7) and index the
//     constant set.
//
// The same lattice point always yields the same gradient for the lifetime of
// one permutation table, which is what makes the noise lattice-consistent.
//
// Gradient sets:
//
//	1D: +1, −1
//	2D: (1,1) (1,−1) (−1,1) (−1,−1)
//	3D: (1,1,−1) (1,−1,−1) (−1,1,−1) (−1,−1,−1)
//	    (1,1,1)  (1,−1,1)  (−1,1,1)  (−1,−1,1)
package gradient
