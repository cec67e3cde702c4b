package interp

// Fade maps t in [0,1] onto the quintic curve 6t⁵ − 15t⁴ + 10t³.
// Values outside [0,1] are not clamped.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Lerp blends a0 and a1 by weight t.
//
// Lerp(0, a0, a1) == a0 and Lerp(1, a0, a1) == a1 exactly; the t==1 case is
// returned directly because a0 + (a1-a0) can round away from a1. t outside
// [0,1] extrapolates.
func Lerp(t, a0, a1 float64) float64 {
	if t == 1 {
		return a1
	}
	return a0 + t*(a1-a0)
}
