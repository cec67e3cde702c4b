package noise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/perlin/noise"
	"github.com/katalvlaran/perlin/permutation"
)

// OctavesSuite groups tests for the fractal compositor.
type OctavesSuite struct {
	suite.Suite
	g *noise.Generator
}

func (s *OctavesSuite) SetupTest() {
	g, err := noise.New(noise.DefaultConfig(), noise.WithSeed(4242))
	require.NoError(s.T(), err)
	s.g = g
}

// TestSingleOctaveIsBaseSample: one octave has amplitude sum 1, so the
// result is the base sampler at the scaled coordinates, bit for bit.
func (s *OctavesSuite) TestSingleOctaveIsBaseSample() {
	f := s.g.Frequency()
	for i := 0; i < 200; i++ {
		x := float64(i)*13.7 - 900
		y := float64(i)*-7.1 + 40
		z := float64(i) * 3.3

		v1, err := s.g.Octaves1D(x, 1)
		require.NoError(s.T(), err)
		require.Equal(s.T(), s.g.Noise1D(x*f), v1)

		v2, err := s.g.Octaves2D(x, y, 1)
		require.NoError(s.T(), err)
		require.Equal(s.T(), s.g.Noise2D(x*f, y*f), v2)

		v3, err := s.g.Octaves3D(x, y, z, 1)
		require.NoError(s.T(), err)
		require.Equal(s.T(), s.g.Noise3D(x*f, y*f, z*f), v3)
	}
}

func (s *OctavesSuite) TestInvalidOctaveCount() {
	for _, n := range []int{0, -1, -100} {
		_, err := s.g.Octaves1D(1, n)
		require.ErrorIs(s.T(), err, noise.ErrInvalidOctaves)
		_, err = s.g.Octaves2D(1, 1, n)
		require.ErrorIs(s.T(), err, noise.ErrInvalidOctaves)
		_, err = s.g.Octaves3D(1, 1, 1, n)
		require.ErrorIs(s.T(), err, noise.ErrInvalidOctaves)
	}
}

func (s *OctavesSuite) TestRange() {
	for i := 0; i < 2000; i++ {
		x := float64(i)*7.3 - 5000
		y := float64(i)*11.9 - 5000
		z := float64(i)*-3.1 + 800
		for _, n := range []int{1, 2, 4, 8} {
			v1, err := s.g.Octaves1D(x, n)
			require.NoError(s.T(), err)
			require.True(s.T(), v1 >= 0 && v1 <= 1, "Octaves1D n=%d: %v", n, v1)

			v2, err := s.g.Octaves2D(x, y, n)
			require.NoError(s.T(), err)
			require.True(s.T(), v2 >= 0 && v2 <= 1, "Octaves2D n=%d: %v", n, v2)

			v3, err := s.g.Octaves3D(x, y, z, n)
			require.NoError(s.T(), err)
			require.True(s.T(), v3 >= 0 && v3 <= 1, "Octaves3D n=%d: %v", n, v3)
		}
	}
}

// TestWeightedMean checks the normalization on the identity table, where
// Noise1D(0.5) = 0.75 and Noise1D(1) = 0.5.
func (s *OctavesSuite) TestWeightedMean() {
	g, err := noise.New(noise.Config{Frequency: 1, Persistence: 0.65}, noise.WithTable(permutation.Identity()))
	require.NoError(s.T(), err)

	v, err := g.Octaves1D(0.5, 2)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), (0.75+0.65*0.5)/1.65, v, 1e-15)
}

func (s *OctavesSuite) TestZeroPersistenceKeepsFirstOctave() {
	d, err := s.g.WithPersistence(0)
	require.NoError(s.T(), err)
	for i := 0; i < 50; i++ {
		x := float64(i)*17.3 + 0.4
		v, err := d.Octaves2D(x, -x, 6)
		require.NoError(s.T(), err)
		require.Equal(s.T(), d.Noise2D(x*d.Frequency(), -x*d.Frequency()), v)
	}
}

// TestPersistenceAboveOne is accepted: octave weights grow but the result
// is still a weighted mean of values in [0,1].
func (s *OctavesSuite) TestPersistenceAboveOne() {
	d, err := s.g.WithPersistence(1.5)
	require.NoError(s.T(), err)
	for i := 0; i < 200; i++ {
		v, err := d.Octaves3D(float64(i)*3.1, float64(i)*5.7, 1, 6)
		require.NoError(s.T(), err)
		require.False(s.T(), math.IsNaN(v))
		require.True(s.T(), v >= 0 && v <= 1, "got %v", v)
	}
}

func (s *OctavesSuite) TestZeroAmplitudeSum() {
	d, err := s.g.WithPersistence(-1)
	require.NoError(s.T(), err)

	_, err = d.Octaves1D(10, 2)
	require.ErrorIs(s.T(), err, noise.ErrZeroAmplitude)

	_, err = d.Octaves1D(10, 3)
	require.NoError(s.T(), err, "odd octave count leaves a non-zero sum")
}

// TestNegativePersistenceLeavesRange pins the documented behaviour: a
// negative decay is accepted and the weighted sum is not bounded by [0,1].
func (s *OctavesSuite) TestNegativePersistenceLeavesRange() {
	g, err := noise.New(noise.Config{Frequency: 1, Persistence: -0.9}, noise.WithTable(permutation.Identity()))
	require.NoError(s.T(), err)

	v, err := g.Octaves1D(0.5, 2)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), (0.75-0.9*0.5)/0.1, v, 1e-9)
	require.Greater(s.T(), v, 1.0)
}

// TestHugeOctaveCount: once freq overflows, the remaining octaves are
// dropped instead of turning the result into NaN.
func (s *OctavesSuite) TestHugeOctaveCount() {
	v2, err := s.g.Octaves2D(10.3, 20.7, 1100)
	require.NoError(s.T(), err)
	require.False(s.T(), math.IsNaN(v2))
	require.True(s.T(), v2 >= 0 && v2 <= 1, "got %v", v2)

	more, err := s.g.Octaves2D(10.3, 20.7, 2000)
	require.NoError(s.T(), err)
	require.Equal(s.T(), v2, more)

	v1, err := s.g.Octaves1D(10.3, 1500)
	require.NoError(s.T(), err)
	require.False(s.T(), math.IsNaN(v1))
	v3, err := s.g.Octaves3D(10.3, 20.7, -4.2, 1500)
	require.NoError(s.T(), err)
	require.False(s.T(), math.IsNaN(v3))
	require.True(s.T(), v3 >= 0 && v3 <= 1, "got %v", v3)
}

func (s *OctavesSuite) TestOverflowingCoordinate() {
	g, err := noise.New(noise.Config{Frequency: 4, Persistence: 0.5}, noise.WithSeed(1))
	require.NoError(s.T(), err)
	_, err = g.Octaves2D(math.MaxFloat64, 1, 3)
	require.ErrorIs(s.T(), err, noise.ErrNonFinite, "first octave already overflows")
	_, err = g.Octaves3D(1, math.Inf(-1), 1, 1)
	require.ErrorIs(s.T(), err, noise.ErrNonFinite)

	g, err = noise.New(noise.Config{Frequency: 1, Persistence: 0.5}, noise.WithSeed(1))
	require.NoError(s.T(), err)
	v, err := g.Octaves1D(1e300, 100)
	require.NoError(s.T(), err, "octaves up to the overflow still count")
	require.False(s.T(), math.IsNaN(v))
}

func (s *OctavesSuite) TestSmoothness() {
	d, err := s.g.WithFrequency(0.05)
	require.NoError(s.T(), err)

	prev, err := d.Octaves2D(0, 0, 4)
	require.NoError(s.T(), err)
	for i := 1; i < 1000; i++ {
		curr, err := d.Octaves2D(float64(i)*0.1, 0, 4)
		require.NoError(s.T(), err)
		require.Less(s.T(), math.Abs(curr-prev), 0.1, "noise changed too rapidly at step %d", i)
		prev = curr
	}
}

func (s *OctavesSuite) TestDeterministicAcrossGenerators() {
	other, err := noise.New(noise.DefaultConfig(), noise.WithTable(s.g.Table()))
	require.NoError(s.T(), err)
	for i := 0; i < 100; i++ {
		x, y := float64(i)*21.5, float64(i)*-9.25
		a, err := s.g.Octaves2D(x, y, 5)
		require.NoError(s.T(), err)
		b, err := other.Octaves2D(x, y, 5)
		require.NoError(s.T(), err)
		require.Equal(s.T(), a, b)
	}
}

func TestOctavesSuite(t *testing.T) {
	suite.Run(t, new(OctavesSuite))
}
