package noise

import (
	"fmt"
	"math"
)

// octaves sums n samples of sample at doubling frequency and decaying
// amplitude, then divides by the amplitude total. span is the largest
// coordinate magnitude; octaves whose scaled coordinates or amplitude are no
// longer finite and non-zero are dropped.
//
// Complexity: O(n) samples.
func (g *Generator) octaves(method string, n int, span float64, sample func(freq float64) float64) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%s: octaves=%d: %w", method, n, ErrInvalidOctaves)
	}
	if g.table == nil {
		return 0, fmt.Errorf("%s: %w", method, ErrNotInitialized)
	}

	var total, maxAmp float64
	amplitude := 1.0
	freq := g.cfg.Frequency
	for i := range n {
		// Doubling overflows freq (or coord*freq) after ~1000 octaves.
		if math.IsInf(freq, 0) || math.IsInf(span*freq, 0) || amplitude == 0 || math.IsInf(amplitude, 0) {
			if i == 0 {
				return 0, fmt.Errorf("%s: coordinate %v * frequency %v: %w", method, span, freq, ErrNonFinite)
			}
			break
		}
		total += amplitude * sample(freq)
		maxAmp += amplitude
		amplitude *= g.cfg.Persistence
		freq *= 2
	}
	if maxAmp == 0 {
		// Only reachable with negative persistence, e.g. -1 and an even n.
		return 0, fmt.Errorf("%s: persistence=%v octaves=%d: %w", method, g.cfg.Persistence, n, ErrZeroAmplitude)
	}
	return total / maxAmp, nil
}

// Octaves1D returns n-octave fractal noise at x.
// With n == 1 the result is exactly Noise1D(x*Frequency). For Persistence ≥ 0
// the result is in [0,1]; a negative Persistence gives alternating-sign
// weights and the result may fall outside [0,1].
//
// Errors: ErrInvalidOctaves (n < 1), ErrNotInitialized, ErrZeroAmplitude,
// ErrNonFinite (x*Frequency overflows).
func (g *Generator) Octaves1D(x float64, n int) (float64, error) {
	return g.octaves(MethodOctaves1D, n, math.Abs(x), func(f float64) float64 {
		return g.Noise1D(x * f)
	})
}

// Octaves2D returns n-octave fractal noise at (x, y).
func (g *Generator) Octaves2D(x, y float64, n int) (float64, error) {
	return g.octaves(MethodOctaves2D, n, maxAbs(x, y), func(f float64) float64 {
		return g.Noise2D(x*f, y*f)
	})
}

// Octaves3D returns n-octave fractal noise at (x, y, z).
func (g *Generator) Octaves3D(x, y, z float64, n int) (float64, error) {
	return g.octaves(MethodOctaves3D, n, maxAbs(x, y, z), func(f float64) float64 {
		return g.Noise3D(x*f, y*f, z*f)
	})
}

func maxAbs(coords ...float64) float64 {
	var m float64
	for _, c := range coords {
		m = math.Max(m, math.Abs(c))
	}
	return m
}
