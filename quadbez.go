package curve3

import (
	"fmt"
	"math"
	"slices"
)

var _ ParametricCurve = QuadBez{}
var _ Arclener = QuadBez{}
var _ Extremer = QuadBez{}

// QuadBez is a quadratic Bézier segment in 3D space, defined by its start
// point P0, control point P1, and end point P2.
//
// QuadBez is a plain value; none of its methods mutate it, so a single value
// can be shared freely between goroutines. The control points may coincide;
// the degenerate curve is legal and has zero length.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// DefaultEstimateSamples is the sample count to use with
// [QuadBez.EstimateArclen] when the caller has no particular accuracy
// requirement. It balances accuracy and cost for typical callers.
const DefaultEstimateSamples = 3

// EvalQuad evaluates the quadratic Bézier with control points p0, p1, and p2
// at parameter t, without constructing a [QuadBez].
//
// It computes (1−t)²·p0 + 2(1−t)t·p1 + t²·p2. The parameter is not clamped;
// values outside [0, 1] extrapolate smoothly beyond the endpoints.
func EvalQuad(p0, p1, p2 Point, t float64) Point {
	mt := 1.0 - t
	a := Vec3(p0).Mul(mt * mt)
	b := Vec3(p1).Mul(mt * 2.0)
	c := Vec3(p2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Eval evaluates the curve at parameter t. Eval(0) returns P0 exactly and
// Eval(1) returns P2 exactly; t is not clamped to [0, 1].
func (q QuadBez) Eval(t float64) Point {
	return EvalQuad(q.P0, q.P1, q.P2, t)
}

// SegmentLength returns the parameter step between consecutive samples when
// producing count uniformly spaced samples, i.e. 1/count.
//
// The first sample is at t=0 and the last at t=(count−1)/count; the end point
// is never part of the uniformly spaced sample set.
func (q QuadBez) SegmentLength(count int) float64 {
	return 1.0 / float64(count)
}

// Points returns count points spaced uniformly in parameter space, at
// t = i/count for i in [0, count). It returns an error wrapping
// [ErrInvalidArgument] if count < 2.
func (q QuadBez) Points(count int) ([]Point, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: sample count %d is less than 2", ErrInvalidArgument, count)
	}
	out := make([]Point, count)
	q.fillPoints(out[:count])
	return out, nil
}

// PointsInto is like [QuadBez.Points] but writes the samples into the first
// count elements of dst. It additionally returns an error wrapping
// [ErrInvalidArgument] if dst cannot hold count points. On error, dst is left
// unmodified.
func (q QuadBez) PointsInto(dst []Point, count int) error {
	if count < 2 {
		return fmt.Errorf("%w: sample count %d is less than 2", ErrInvalidArgument, count)
	}
	if len(dst) < count {
		return fmt.Errorf("%w: destination holds %d points, need %d", ErrInvalidArgument, len(dst), count)
	}
	q.fillPoints(dst[:count])
	return nil
}

func (q QuadBez) fillPoints(dst []Point) {
	step := q.SegmentLength(len(dst))
	for i := range dst {
		dst[i] = q.Eval(step * float64(i))
	}
}

// Rays returns count rays whose origins are the points returned by
// [QuadBez.Points] and whose directions point from each sample to the next.
//
// The direction of the last ray isn't really definable, as there is no next
// sample; it is a copy of the second-to-last ray's direction, not a tangent.
// Callers that need a true tangent at the end of the curve should use
// [QuadBez.Differentiate] instead.
//
// Directions are not normalized; their magnitude is the distance to the next
// sample. Rays returns an error wrapping [ErrInvalidArgument] if count < 2.
func (q QuadBez) Rays(count int) ([]Ray, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: sample count %d is less than 2", ErrInvalidArgument, count)
	}
	out := make([]Ray, count)
	q.fillRays(out[:count])
	return out, nil
}

// RaysInto is like [QuadBez.Rays] but writes the samples into the first count
// elements of dst. It additionally returns an error wrapping
// [ErrInvalidArgument] if dst cannot hold count rays. On error, dst is left
// unmodified.
func (q QuadBez) RaysInto(dst []Ray, count int) error {
	if count < 2 {
		return fmt.Errorf("%w: sample count %d is less than 2", ErrInvalidArgument, count)
	}
	if len(dst) < count {
		return fmt.Errorf("%w: destination holds %d rays, need %d", ErrInvalidArgument, len(dst), count)
	}
	q.fillRays(dst[:count])
	return nil
}

func (q QuadBez) fillRays(dst []Ray) {
	step := q.SegmentLength(len(dst))
	for i := range dst {
		dst[i].Origin = q.Eval(step * float64(i))
	}
	for i := 0; i < len(dst)-1; i++ {
		dst[i].Direction = dst[i+1].Origin.Sub(dst[i].Origin)
	}
	dst[len(dst)-1].Direction = dst[len(dst)-2].Direction
}

// EstimateArclen returns a piecewise-linear estimate of the curve's length,
// walking samples uniformly spaced points and closing the gap from the last
// sample to the end point. Larger sample counts give better estimates;
// [DefaultEstimateSamples] is a reasonable choice.
//
// Unlike the sampling methods, EstimateArclen performs no validation on
// samples. Behavior for samples < 1 is unspecified. For a high-accuracy
// result, [QuadBez.Arclen] is both more accurate and cheaper than a large
// sample count.
func (q QuadBez) EstimateArclen(samples int) float64 {
	step := q.SegmentLength(samples)
	sum := 0.0
	prev := q.P0
	for i := 0; i < samples; i++ {
		pt := q.Eval(step * float64(i))
		sum += prev.Distance(pt)
		prev = pt
	}
	return sum + prev.Distance(q.P2)
}

// Arclen returns the arclength of the quadratic Bézier segment.
//
// This computation is based on an analytical formula. Since that formula
// suffers from numerical instability when the curve is very close to a
// straight line, we detect that case and fall back to Legendre-Gauss
// quadrature.
//
// Overall accuracy should be better than 1e-13 over the entire range.
func (q QuadBez) Arclen(accuracy float64) float64 {
	d2 := Vec3(q.P0).Sub(Vec3(q.P1).Mul(2)).Add(Vec3(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a < 5e-4*c {
		// This case happens for nearly straight Béziers.
		//
		// Calculate arclength using Legendre-Gauss quadrature using formula from Behdad
		// in https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec3(q.P0).Mul(-0.492943519233745).
			Add(Vec3(q.P1).Mul(0.430331482911935)).
			Add(Vec3(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec3(q.P0).Mul(-0.0626120363218102).
			Sub(Vec3(q.P1).Mul(0.430331482911935)).
			Add(Vec3(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	// TODO: justify and fine-tune this exact constant.
	if baC2 < 1e-13 {
		// This case happens for Béziers with a sharp kink.
		return v0
	} else {
		return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
	}
}

// Split subdivides the curve at parameter t using de Casteljau's algorithm,
// returning the two halves. The first half covers the original parameter
// range [0, t], the second [t, 1]; they share the point Eval(t), so their
// concatenation reproduces the curve's shape exactly.
//
// t is not validated; values outside [0, 1] produce a valid, extrapolated
// subdivision, consistent with [QuadBez.Eval].
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	q0 := q.P0.Lerp(q.P1, t)
	q1 := q.P1.Lerp(q.P2, t)
	b := q0.Lerp(q1, t)
	return QuadBez{q.P0, q0, b}, QuadBez{b, q1, q.P2}
}

// Subdivide splits the curve into halves at t=0.5.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return q.Subdivide()
}

// Subsegment returns the portion of the curve covering the parameter range
// [t0, t1], reparametrized to [0, 1].
func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) SubsegmentCurve(t0 float64, t1 float64) ParametricCurve {
	return q.Subsegment(t0, t1)
}

// Differentiate returns the curve's derivative as a [Line]: evaluating the
// line at t gives the curve's tangent vector at t, interpreted as a point.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) BoundingBox() Box3 {
	return BoundingBox(q)
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line. There is at most one root
	// per axis.

	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	for _, axis := range [3][2]float64{{d0.X, dd.X}, {d0.Y, dd.Y}, {d0.Z, dd.Z}} {
		if axis[1] != 0.0 {
			t := -axis[0] / axis[1]
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}
	slices.Sort(out[:outN])
	return out, outN
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}
