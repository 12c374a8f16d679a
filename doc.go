// Package curve3 provides a quadratic Bézier segment in 3D space, along with
// the point, vector, line, ray, and bounding box primitives needed to work
// with it. It is a companion to honnef.co/go/curve, which covers 2D shapes,
// curves, and paths; this package covers the much smaller set of operations
// that game and animation systems need for spline-based movement, path
// following, and camera rigs.
//
// # Curves
//
// [QuadBez] is the central type. It is an immutable value holding three
// control points and supports evaluation ([QuadBez.Eval]), uniform sampling
// into points ([QuadBez.Points]) or oriented rays ([QuadBez.Rays]), arc
// length measurement (analytically with [QuadBez.Arclen], or as a cheap
// piecewise-linear estimate with [QuadBez.EstimateArclen]), and de Casteljau
// subdivision ([QuadBez.Split]).
//
// [Line] is the other [ParametricCurve] in this package; besides being useful
// on its own, it is the derivative of a quadratic Bézier (see
// [QuadBez.Differentiate]).
//
// # Sampling
//
// The sampling methods space their samples uniformly in parameter space,
// starting at t=0. The end point is deliberately not part of the sample set:
// n samples cover t = 0, 1/n, ..., (n−1)/n. Each method comes in an
// allocating form and an Into form that writes into a caller-supplied slice
// without allocating.
//
// # Parameters are not clamped
//
// Evaluation and subdivision accept any parameter value; t outside [0, 1]
// extrapolates the curve smoothly beyond its endpoints rather than returning
// an error.
package curve3
