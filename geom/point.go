// Package geom provides the geometric primitives the rest of the module is
// built on: points and vectors, axis-aligned boxes, and the arc-to-chord
// flattening math used throughout curve and area construction.
package geom

import "math"

// Point is an ordered pair of 64-bit floats. It doubles as a 2D vector.
type Point struct {
	X, Y float64
}

// Pt is a small constructor, matching the terse helper style used throughout
// the vendored clipper package (e.g. Point64{X, Y} literals).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component) of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the 2-norm of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns p scaled to unit length. Returns the zero vector if p is
// the zero vector (degenerate segments are handled by callers, not here).
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Scale(1 / l)
}

// RightNormal returns the unit vector 90 degrees clockwise of p, used to
// build offset strips (spec.md §4.2's r0/r1).
func (p Point) RightNormal() Point {
	n := p.Normalize()
	return Point{X: n.Y, Y: -n.X}
}

// Angle returns the angle of p from the positive X axis, in (-pi, pi].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// AngleTo returns the signed angle from p to q, measured counter-clockwise,
// in (-pi, pi].
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(p.Cross(q), p.Dot(q))
}

// Lerp linearly interpolates between p and q at parameter t in [0,1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Equal reports whether p and q are within eps of each other, component-wise
// via Euclidean distance. eps is normally the Area's accuracy value.
func (p Point) Equal(q Point, eps float64) bool {
	return p.Distance(q) <= eps
}

// Rotate returns p rotated by theta radians (counter-clockwise) about the
// origin.
func (p Point) Rotate(theta float64) Point {
	s, c := math.Sincos(theta)
	return Point{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// RotateAbout returns p rotated by theta radians about center.
func (p Point) RotateAbout(center Point, theta float64) Point {
	return center.Add(p.Sub(center).Rotate(theta))
}
