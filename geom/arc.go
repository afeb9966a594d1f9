package geom

import "math"

// MaxArcSegments bounds how finely any single arc span is ever flattened,
// regardless of how tight accuracy is requested.
const MaxArcSegments = 100

// ArcSegmentCount returns how many straight chords a circular arc of the
// given radius and absolute sweep (radians) must be split into so that the
// sagitta (chord-midpoint to arc distance) never exceeds accuracy.
//
// Grounded on original_source/src/AreaClipper.cpp's AddVertex: per-segment
// angle dphi = 2*acos((radius-accuracy)/radius); segment count is the sweep
// divided by dphi, rounded up, clamped to [1, MaxArcSegments].
func ArcSegmentCount(radius, sweep, accuracy float64) int {
	sweep = math.Abs(sweep)
	if radius <= 0 || sweep == 0 {
		return 1
	}
	a := accuracy
	if a <= 0 || a >= radius {
		a = radius * 0.999999
	}
	ratio := (radius - a) / radius
	if ratio < -1 {
		ratio = -1
	}
	if ratio > 1 {
		ratio = 1
	}
	dphi := 2 * math.Acos(ratio)
	if dphi <= 0 {
		return MaxArcSegments
	}
	n := int(math.Ceil(sweep / dphi))
	if n < 1 {
		n = 1
	}
	if n > MaxArcSegments {
		n = MaxArcSegments
	}
	return n
}

// FlattenArc emits the chord points approximating the arc from start to end,
// pivoted at center, traveling counter-clockwise (ccw=true) or clockwise
// (ccw=false). The returned slice holds only the intermediate and final
// points — start itself is never re-emitted (spec.md §4.1: "emit endpoints
// only, not the start"). Returns nil for a degenerate arc (start == end).
func FlattenArc(center, start, end Point, ccw bool, accuracy float64) []Point {
	if start.Equal(end, 1e-12) {
		return nil
	}
	radius := start.Distance(center)
	if radius <= 0 {
		return []Point{end}
	}

	startAngle := start.Sub(center).Angle()
	endAngle := end.Sub(center).Angle()

	var sweep float64
	if ccw {
		sweep = endAngle - startAngle
		for sweep <= 0 {
			sweep += 2 * math.Pi
		}
	} else {
		sweep = startAngle - endAngle
		for sweep <= 0 {
			sweep += 2 * math.Pi
		}
	}

	n := ArcSegmentCount(radius, sweep, accuracy)
	pts := make([]Point, 0, n)
	dir := 1.0
	if !ccw {
		dir = -1.0
	}
	for i := 1; i < n; i++ {
		angle := startAngle + dir*sweep*float64(i)/float64(n)
		pts = append(pts, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	pts = append(pts, end)
	return pts
}

// TangentialArcCenter returns the center of the arc that starts at p0 moving
// along direction tangent (unit vector) and passes through p1, turning
// counter-clockwise (ccw=true) or clockwise otherwise. This is the Go
// restatement of original_source/Curve.h's tangential_arc helper, used when
// callers supply tangent-continuous arcs rather than explicit centers.
func TangentialArcCenter(p0, tangent Point, ccw bool, p1 Point) (Point, bool) {
	n := tangent.Normalize()
	var radial Point
	if ccw {
		radial = Point{X: -n.Y, Y: n.X}
	} else {
		radial = Point{X: n.Y, Y: -n.X}
	}
	// Center lies along p0 + t*radial for some t; solve for t such that
	// |center - p1| == |center - p0| == t.
	d := p1.Sub(p0)
	denom := 2 * d.Dot(radial)
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}
	t := d.Dot(d) / denom
	return p0.Add(radial.Scale(t)), true
}
