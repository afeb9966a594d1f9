package curve

import (
	"math"

	"github.com/elhernes/libarea/geom"
)

// Span is a derived view over one vertex and the endpoint that precedes it
// (spec.md §3: "pair (previous endpoint, vertex)"). Spans are never stored;
// Curve.Spans enumerates them on demand.
type Span struct {
	Start  geom.Point
	Vertex Vertex
}

// End returns the span's arrival point.
func (s Span) End() geom.Point {
	return s.Vertex.End
}

// Radius returns the arc radius (distance from center to Start). Zero for
// line spans.
func (s Span) Radius() float64 {
	if !s.Vertex.IsArc() {
		return 0
	}
	return s.Start.Distance(s.Vertex.Center)
}

// sweep returns the signed sweep angle in radians: positive for a
// counter-clockwise arc, negative for clockwise, always chosen in the
// direction the vertex travels, magnitude in (0, 2*pi].
func (s Span) sweep() float64 {
	if !s.Vertex.IsArc() {
		return 0
	}
	c := s.Vertex.Center
	a0 := s.Start.Sub(c).Angle()
	a1 := s.Vertex.End.Sub(c).Angle()
	if s.Vertex.CCW() {
		d := a1 - a0
		for d <= 0 {
			d += 2 * math.Pi
		}
		return d
	}
	d := a1 - a0
	for d >= 0 {
		d -= 2 * math.Pi
	}
	return d
}

// IncludedAngle returns the absolute sweep angle in radians; zero for line
// spans.
func (s Span) IncludedAngle() float64 {
	return math.Abs(s.sweep())
}

// Length returns the span's arc length (straight-line distance for a Line
// span, radius*sweep for an arc span).
func (s Span) Length() float64 {
	if !s.Vertex.IsArc() {
		return s.Start.Distance(s.Vertex.End)
	}
	return s.Radius() * s.IncludedAngle()
}

// PointAt returns the point at parameter t in [0,1] along the span, where
// t=0 is Start and t=1 is End.
func (s Span) PointAt(t float64) geom.Point {
	if !s.Vertex.IsArc() {
		return s.Start.Lerp(s.Vertex.End, t)
	}
	c := s.Vertex.Center
	a0 := s.Start.Sub(c).Angle()
	phi := s.sweep() * t
	r := s.Radius()
	angle := a0 + phi
	return geom.Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}

// Midpoint returns PointAt(0.5).
func (s Span) Midpoint() geom.Point {
	return s.PointAt(0.5)
}

// BoundingBox returns the axis-aligned box enclosing the span. For arcs this
// accounts for the four axis extrema the arc might sweep through.
func (s Span) BoundingBox() geom.Box {
	b := geom.EmptyBox().Extend(s.Start).Extend(s.Vertex.End)
	if !s.Vertex.IsArc() {
		return b
	}
	c := s.Vertex.Center
	r := s.Radius()
	a0 := s.Start.Sub(c).Angle()
	sweep := s.sweep()
	dir := 1.0
	if !s.Vertex.CCW() {
		dir = -1.0
	}
	// Check the four cardinal angles (0, pi/2, pi, 3pi/2) for inclusion in
	// the swept range.
	for k := 0; k < 4; k++ {
		cardinal := float64(k) * math.Pi / 2
		d := cardinal - a0
		for d < 0 {
			d += 2 * math.Pi
		}
		// d is the forward (ccw) angular distance from a0 to cardinal; map
		// into the arc's own travel direction.
		var traveled float64
		if dir > 0 {
			traveled = d
		} else {
			traveled = 2*math.Pi - d
		}
		if traveled <= math.Abs(sweep)+1e-12 {
			b = b.Extend(geom.Point{X: c.X + r*math.Cos(cardinal), Y: c.Y + r*math.Sin(cardinal)})
		}
	}
	return b
}

// SignedAreaContribution returns this span's contribution to the standard
// (positive-for-counter-clockwise) shoelace sum 0.5*sum(x dy - y dx). Curve
// negates the total to honor spec.md §3's "positive => clockwise"
// convention. Line spans contribute the ordinary shoelace cross term; arc
// spans add the circular-sector term (r^2*sweep/2) on top of the chord's
// cross term through the arc center, derived from Green's theorem applied
// to the circular parameterization.
func (s Span) SignedAreaContribution() float64 {
	p0, p1 := s.Start, s.Vertex.End
	if !s.Vertex.IsArc() {
		return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
	}
	c := s.Vertex.Center
	r := s.Radius()
	phi := s.sweep()
	return 0.5 * (r*r*phi + c.X*(p1.Y-p0.Y) - c.Y*(p1.X-p0.X))
}

// NearestPoint returns the closest point on the span to p, and the
// parameter t in [0,1] at which it occurs.
func (s Span) NearestPoint(p geom.Point) (geom.Point, float64) {
	if !s.Vertex.IsArc() {
		d := s.Vertex.End.Sub(s.Start)
		l2 := d.Dot(d)
		if l2 == 0 {
			return s.Start, 0
		}
		t := p.Sub(s.Start).Dot(d) / l2
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		return s.Start.Lerp(s.Vertex.End, t), t
	}
	c := s.Vertex.Center
	r := s.Radius()
	a0 := s.Start.Sub(c).Angle()
	aP := p.Sub(c).Angle()
	sweep := s.sweep()
	dir := 1.0
	if !s.Vertex.CCW() {
		dir = -1.0
	}
	d := aP - a0
	if dir > 0 {
		for d < 0 {
			d += 2 * math.Pi
		}
	} else {
		for d > 0 {
			d -= 2 * math.Pi
		}
	}
	t := d / sweep
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.PointAt(t), t
}

// On reports whether p lies on the span within eps.
func (s Span) On(p geom.Point, eps float64) bool {
	near, _ := s.NearestPoint(p)
	return near.Distance(p) <= eps
}

// Intersect returns the intersection points between two spans. Both line
// and arc combinations are supported; near-parallel / concentric
// degenerate cases return no points rather than failing (spec.md §7
// NumericFailure: "never fatal").
func (s Span) Intersect(o Span, eps float64) []geom.Point {
	switch {
	case !s.Vertex.IsArc() && !o.Vertex.IsArc():
		return intersectLineLine(s.Start, s.Vertex.End, o.Start, o.Vertex.End, eps)
	case !s.Vertex.IsArc() && o.Vertex.IsArc():
		return intersectLineArc(s.Start, s.Vertex.End, o, eps)
	case s.Vertex.IsArc() && !o.Vertex.IsArc():
		return intersectLineArc(o.Start, o.Vertex.End, s, eps)
	default:
		return intersectArcArc(s, o, eps)
	}
}

func intersectLineLine(p0, p1, q0, q1 geom.Point, eps float64) []geom.Point {
	r := p1.Sub(p0)
	q := q1.Sub(q0)
	denom := r.Cross(q)
	if math.Abs(denom) < 1e-15 {
		return nil
	}
	qp := q0.Sub(p0)
	t := qp.Cross(q) / denom
	u := qp.Cross(r) / denom
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return nil
	}
	return []geom.Point{p0.Add(r.Scale(t))}
}

func intersectLineArc(p0, p1 geom.Point, arc Span, eps float64) []geom.Point {
	c := arc.Vertex.Center
	r := arc.Radius()
	d := p1.Sub(p0)
	f := p0.Sub(c)
	a := d.Dot(d)
	if a < 1e-15 {
		return nil
	}
	b := 2 * f.Dot(d)
	cc := f.Dot(f) - r*r
	disc := b*b - 4*a*cc
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	var out []geom.Point
	for _, t := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if t < -eps || t > 1+eps {
			continue
		}
		pt := p0.Add(d.Scale(t))
		if _, onArc := paramOnArc(arc, pt); onArc {
			out = append(out, pt)
		}
	}
	return out
}

func intersectArcArc(a, b Span, eps float64) []geom.Point {
	c0, c1 := a.Vertex.Center, b.Vertex.Center
	r0, r1 := a.Radius(), b.Radius()
	dist := c0.Distance(c1)
	if dist > r0+r1+eps || dist < math.Abs(r0-r1)-eps || dist < 1e-15 {
		return nil
	}
	aa := (r0*r0 - r1*r1 + dist*dist) / (2 * dist)
	h2 := r0*r0 - aa*aa
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	dir := c1.Sub(c0).Normalize()
	mid := c0.Add(dir.Scale(aa))
	perp := geom.Point{X: -dir.Y, Y: dir.X}
	candidates := []geom.Point{mid.Add(perp.Scale(h)), mid.Sub(perp.Scale(h))}
	var out []geom.Point
	seen := map[geom.Point]bool{}
	for _, pt := range candidates {
		if seen[pt] {
			continue
		}
		seen[pt] = true
		_, onA := paramOnArc(a, pt)
		_, onB := paramOnArc(b, pt)
		if onA && onB {
			out = append(out, pt)
		}
	}
	return out
}

// paramOnArc reports whether pt (assumed to lie on the arc's circle) falls
// within the arc's actual angular span, returning its parameter if so.
func paramOnArc(arc Span, pt geom.Point) (float64, bool) {
	c := arc.Vertex.Center
	a0 := arc.Start.Sub(c).Angle()
	aP := pt.Sub(c).Angle()
	sweep := arc.sweep()
	dir := 1.0
	if !arc.Vertex.CCW() {
		dir = -1.0
	}
	d := aP - a0
	if dir > 0 {
		for d < 0 {
			d += 2 * math.Pi
		}
	} else {
		for d > 0 {
			d -= 2 * math.Pi
		}
	}
	t := d / sweep
	return t, t >= -1e-9 && t <= 1+1e-9
}
