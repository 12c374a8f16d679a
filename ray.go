package curve3

// Ray is a point in space paired with a direction. The direction is not
// required to be normalized; in particular, the rays produced by
// [QuadBez.Rays] carry the unnormalized step to the next sample.
type Ray struct {
	Origin    Point
	Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point {
	return r.Origin.Translate(r.Direction.Mul(t))
}

// IsInf reports whether the origin or the direction is infinite.
func (r Ray) IsInf() bool {
	return r.Origin.IsInf() || r.Direction.IsInf()
}

// IsNaN reports whether the origin or the direction is NaN.
func (r Ray) IsNaN() bool {
	return r.Origin.IsNaN() || r.Direction.IsNaN()
}
