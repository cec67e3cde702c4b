package noise

import (
	"math"

	"github.com/katalvlaran/perlin/gradient"
	"github.com/katalvlaran/perlin/interp"
)

// latticeMask wraps a cell coordinate into the table's base domain.
const latticeMask = 255

// Lattice splits c into its wrapped cell index and fractional offset.
//
// The floor is a true floor (−0.5 → −1), and the mask keeps negative cells in
// [0,255] under two's complement: Lattice(−0.5) == (255, 0.5).
// NaN or infinite c yields a NaN offset; the cell stays in range.
func Lattice(c float64) (cell int, frac float64) {
	f := math.Floor(c)
	return int(f) & latticeMask, c - f
}

// Normalize maps a raw n-dimensional sample from [−√n, √n] onto [0,1].
func Normalize(v float64, dims int) float64 {
	r := math.Sqrt(float64(dims))
	return (v + r) / (2 * r)
}

// Sample1D returns raw 1D noise at x, in [−1, 1].
func Sample1D(p gradient.Lookup, x float64) float64 {
	X, xf := Lattice(x)
	u := interp.Fade(xf)

	left := xf * gradient.At1D(p, X)
	right := (xf - 1) * gradient.At1D(p, X+1)

	return interp.Lerp(u, left, right)
}

// Sample2D returns raw 2D noise at (x, y), in [−√2, √2].
//
// Corners and their offsets:
//
//	top-left     (X,   Y+1)  (xf,   yf−1)
//	top-right    (X+1, Y+1)  (xf−1, yf−1)
//	bottom-left  (X,   Y)    (xf,   yf)
//	bottom-right (X+1, Y)    (xf−1, yf)
//
// Blended along x with Fade(xf), then along y with Fade(yf).
func Sample2D(p gradient.Lookup, x, y float64) float64 {
	X, xf := Lattice(x)
	Y, yf := Lattice(y)

	u := interp.Fade(xf)
	v := interp.Fade(yf)

	topLeft := gradient.Vec2{X: xf, Y: yf - 1}
	topRight := gradient.Vec2{X: xf - 1, Y: yf - 1}
	bottomLeft := gradient.Vec2{X: xf, Y: yf}
	bottomRight := gradient.Vec2{X: xf - 1, Y: yf}

	c0 := interp.Lerp(u,
		bottomLeft.Dot(gradient.At2D(p, X, Y)),
		bottomRight.Dot(gradient.At2D(p, X+1, Y)))
	c1 := interp.Lerp(u,
		topLeft.Dot(gradient.At2D(p, X, Y+1)),
		topRight.Dot(gradient.At2D(p, X+1, Y+1)))

	return interp.Lerp(v, c0, c1)
}

// Sample3D returns raw 3D noise at (x, y, z), in [−√3, √3].
//
// The lower slice (lattice Z, z offset zf) and upper slice (Z+1, zf−1) are
// each blended like Sample2D, then the two are blended with Fade(zf).
func Sample3D(p gradient.Lookup, x, y, z float64) float64 {
	X, xf := Lattice(x)
	Y, yf := Lattice(y)
	Z, zf := Lattice(z)

	u := interp.Fade(xf)
	v := interp.Fade(yf)
	w := interp.Fade(zf)

	lower := slice3D(p, X, Y, Z, xf, yf, zf, u, v)
	upper := slice3D(p, X, Y, Z+1, xf, yf, zf-1, u, v)

	return interp.Lerp(w, lower, upper)
}

// slice3D blends the four corners of one z-slice of the unit cube.
// Z is the slice's lattice z and dz the sample's z offset from it.
func slice3D(p gradient.Lookup, X, Y, Z int, xf, yf, dz, u, v float64) float64 {
	topLeft := gradient.Vec3{X: xf, Y: yf - 1, Z: dz}
	topRight := gradient.Vec3{X: xf - 1, Y: yf - 1, Z: dz}
	bottomLeft := gradient.Vec3{X: xf, Y: yf, Z: dz}
	bottomRight := gradient.Vec3{X: xf - 1, Y: yf, Z: dz}

	c0 := interp.Lerp(u,
		bottomLeft.Dot(gradient.At3D(p, X, Y, Z)),
		bottomRight.Dot(gradient.At3D(p, X+1, Y, Z)))
	c1 := interp.Lerp(u,
		topLeft.Dot(gradient.At3D(p, X, Y+1, Z)),
		topRight.Dot(gradient.At3D(p, X+1, Y+1, Z)))

	return interp.Lerp(v, c0, c1)
}

// clamp01 absorbs last-ulp rounding at the ends of [0,1]. NaN passes through.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
