// Package interp holds the smoothing and blending primitives shared by every
// noise sampler.
//
//   - Fade(t)         quintic smoothstep t³(t(6t−15)+10): Fade(0)=0, Fade(1)=1,
//     zero first and second derivatives at both ends, so noise stays C²
//     continuous across lattice boundaries.
//   - Lerp(t, a0, a1) a0 + t·(a1−a0), exact at both endpoints, unclamped.
//
// Both functions are pure and allocation-free.
package interp
