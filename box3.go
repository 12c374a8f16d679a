package curve3

// Box3 is an axis-aligned box in 3D space, described by its minimum and
// maximum corners.
type Box3 struct {
	Min Point
	Max Point
}

// NewBox3FromPoints returns a box with the extents of p0 and p1, ensuring that
// the extents along each axis are non-negative.
func NewBox3FromPoints(p0, p1 Point) Box3 {
	return Box3{Min: p0, Max: p1}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that Min's
// coordinates are no larger than Max's.
func (b Box3) Abs() Box3 {
	return Box3{
		Min: Point{
			X: min(b.Min.X, b.Max.X),
			Y: min(b.Min.Y, b.Max.Y),
			Z: min(b.Min.Z, b.Max.Z),
		},
		Max: Point{
			X: max(b.Min.X, b.Max.X),
			Y: max(b.Min.Y, b.Max.Y),
			Z: max(b.Min.Z, b.Max.Z),
		},
	}
}

// Size returns the box's extent along each axis. The components may be
// negative if the box is not normalized with [Box3.Abs].
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Box3) Center() Point {
	return b.Min.Midpoint(b.Max)
}

func (b Box3) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X < b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y < b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z < b.Max.Z
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if both boxes are normalized.
func (b Box3) Union(o Box3) Box3 {
	return Box3{
		Min: Point{
			X: min(b.Min.X, o.Min.X),
			Y: min(b.Min.Y, o.Min.Y),
			Z: min(b.Min.Z, o.Min.Z),
		},
		Max: Point{
			X: max(b.Max.X, o.Max.X),
			Y: max(b.Max.Y, o.Max.Y),
			Z: max(b.Max.Z, o.Max.Z),
		},
	}
}

// UnionPoint returns the smallest box enclosing b and pt.
func (b Box3) UnionPoint(pt Point) Box3 {
	return b.Union(Box3{Min: pt, Max: pt})
}

func (b Box3) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b Box3) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}
