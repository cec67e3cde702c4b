package gradient

// Lookup is the read-only view of a permutation table the hashes need.
// *permutation.Table satisfies it.
type Lookup interface {
	Get(i int) int
}

// Vec2 is a 2D gradient or offset vector.
type Vec2 struct{ X, Y float64 }

// Vec3 is a 3D gradient or offset vector.
type Vec3 struct{ X, Y, Z float64 }

// Dot returns v·o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Dot returns v·o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Hash masks, one less than the size of each gradient set.
const (
	Mask1D = 1
	Mask2D = 3
	Mask3D = 7
)

var (
	grad1 = [Mask1D + 1]float64{1, -1}

	grad2 = [Mask2D + 1]Vec2{
		{1, 1},
		{1, -1},
		{-1, 1},
		{-1, -1},
	}

	grad3 = [Mask3D + 1]Vec3{
		{1, 1, -1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, -1},
		{1, 1, 1},
		{1, -1, 1},
		{-1, 1, 1},
		{-1, -1, 1},
	}
)
