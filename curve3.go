package curve3

import "errors"

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 3 because a quadratic Bézier in three dimensions has at most one
// interior extremum per axis. Curves with more extrema should be subdivided.
const MaxExtrema = 3

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as path following
// and animation.
const DefaultAccuracy = 1e-6

// ErrInvalidArgument is returned by the sampling methods when the requested
// sample count is too small, or when a caller-supplied buffer cannot hold the
// requested number of samples. Use [errors.Is] to match it.
var ErrInvalidArgument = errors.New("curve3: invalid argument")

// ParametricCurve describes a curve parametrized by a scalar.
//
// If the result is interpreted as a point, this represents a curve. But the
// result can be interpreted as a vector as well.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	// Get a subsegment of the curve for the given parameter range.
	SubsegmentCurve(start, end float64) ParametricCurve
	// Subdivide into (roughly) halves.
	SubdivideCurve() (ParametricCurve, ParametricCurve)
	Start() Point
	End() Point
}

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values). Compute time may vary with accuracy, if the
	// curve needs to be subdivided.
	Arclen(accuracy float64) float64
}

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count.
	// At most three extrema can be reported, which is sufficient for
	// quadratic Béziers in 3D.
	//
	// The extrema should be reported in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// BoundingBox returns the smallest axis-aligned box that encloses the curve in
// the range [0, 1].
func BoundingBox(c interface {
	Extremer
	ParametricCurve
}) Box3 {
	bbox := NewBox3FromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}
