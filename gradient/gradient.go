package gradient

// Hash1D returns p[x].
func Hash1D(p Lookup, x int) int {
	return p.Get(x)
}

// Hash2D returns p[p[x]+y].
func Hash2D(p Lookup, x, y int) int {
	return p.Get(p.Get(x) + y)
}

// Hash3D returns p[p[p[x]+y]+z].
func Hash3D(p Lookup, x, y, z int) int {
	return p.Get(p.Get(p.Get(x)+y) + z)
}

// Select1D maps an even hash to +1 and an odd hash to −1.
func Select1D(h int) float64 {
	return grad1[h&Mask1D]
}

// Select2D maps h&3 onto the 2D gradient set.
func Select2D(h int) Vec2 {
	return grad2[h&Mask2D]
}

// Select3D maps h&7 onto the 3D gradient set.
func Select3D(h int) Vec3 {
	return grad3[h&Mask3D]
}

// At1D returns the gradient at lattice x. x must be in [0,511].
func At1D(p Lookup, x int) float64 {
	return Select1D(Hash1D(p, x))
}

// At2D returns the gradient at lattice (x, y).
func At2D(p Lookup, x, y int) Vec2 {
	return Select2D(Hash2D(p, x, y))
}

// At3D returns the gradient at lattice (x, y, z).
func At3D(p Lookup, x, y, z int) Vec3 {
	return Select3D(Hash3D(p, x, y, z))
}
