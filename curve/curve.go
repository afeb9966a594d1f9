package curve

import (
	"math"

	"github.com/elhernes/libarea/geom"
)

// Curve is an ordered list of vertices forming a polyline-with-arcs
// (spec.md §3). The first vertex is always Kind=Line with End equal to the
// curve's start point. A Curve is closed iff its first vertex's End equals
// its last vertex's End.
type Curve struct {
	Vertices []Vertex
	Accuracy float64
}

// NewCurve returns a Curve starting at start, with the given chord-error
// accuracy (spec.md §3's Area.accuracy is normally threaded down to each of
// its curves).
func NewCurve(start geom.Point, accuracy float64) *Curve {
	return &Curve{
		Vertices: []Vertex{NewLineVertex(start)},
		Accuracy: accuracy,
	}
}

// AddLineVertex appends a straight span ending at end.
func (c *Curve) AddLineVertex(end geom.Point) {
	c.Vertices = append(c.Vertices, NewLineVertex(end))
}

// AddArcVertex appends an arc span ending at end, centered at center. It
// rejects geometry spec.md §7 calls out as InvalidGeometry: a zero-radius
// arc (the span's start or end coincides with center within Accuracy)
// returns ErrDegenerateArc, and a center that isn't equidistant from the
// start and end points within Accuracy returns ErrArcRadiusMismatch.
func (c *Curve) AddArcVertex(end, center geom.Point, ccw bool) error {
	start := c.EndPoint()
	startRadius := start.Distance(center)
	endRadius := end.Distance(center)
	if startRadius <= c.Accuracy || endRadius <= c.Accuracy {
		return ErrDegenerateArc
	}
	if math.Abs(startRadius-endRadius) > c.Accuracy {
		return ErrArcRadiusMismatch
	}
	c.Vertices = append(c.Vertices, NewArcVertex(end, center, ccw))
	return nil
}

// Start returns the curve's first point. Returns the zero point for an
// empty curve.
func (c *Curve) Start() geom.Point {
	if len(c.Vertices) == 0 {
		return geom.Point{}
	}
	return c.Vertices[0].End
}

// EndPoint returns the curve's last point.
func (c *Curve) EndPoint() geom.Point {
	if len(c.Vertices) == 0 {
		return geom.Point{}
	}
	return c.Vertices[len(c.Vertices)-1].End
}

// IsClosed reports whether the curve's start and end points coincide within
// eps.
func (c *Curve) IsClosed(eps float64) bool {
	if len(c.Vertices) < 2 {
		return false
	}
	return c.Start().Equal(c.EndPoint(), eps)
}

// Spans enumerates the curve's spans in order. A curve with N vertices has
// N-1 spans (the first vertex only marks the start point).
func (c *Curve) Spans() []Span {
	if len(c.Vertices) < 2 {
		return nil
	}
	spans := make([]Span, 0, len(c.Vertices)-1)
	prev := c.Vertices[0].End
	for _, v := range c.Vertices[1:] {
		spans = append(spans, Span{Start: prev, Vertex: v})
		prev = v.End
	}
	return spans
}

// SignedArea returns the curve's signed area: positive for clockwise,
// negative for counter-clockwise (spec.md §3). Meaningful only for closed
// curves, but computed regardless (open curves just get the area of their
// implicit closing chord).
func (c *Curve) SignedArea() float64 {
	var sum float64
	for _, s := range c.Spans() {
		sum += s.SignedAreaContribution()
	}
	return -sum
}

// IsClockwise reports whether the curve's signed area is positive.
func (c *Curve) IsClockwise() bool {
	return c.SignedArea() > 0
}

// Perimeter returns the sum of every span's length.
func (c *Curve) Perimeter() float64 {
	var sum float64
	for _, s := range c.Spans() {
		sum += s.Length()
	}
	return sum
}

// BoundingBox returns the union of every span's bounding box.
func (c *Curve) BoundingBox() geom.Box {
	b := geom.EmptyBox()
	if len(c.Vertices) == 0 {
		return b
	}
	b = b.Extend(c.Start())
	for _, s := range c.Spans() {
		b = b.Union(s.BoundingBox())
	}
	return b
}

// Reverse returns a new Curve tracing the same geometry in the opposite
// direction. Line vertices keep their kind; arc vertices flip CCW<->CW.
// Per spec.md §8, SignedArea changes sign and preserves magnitude under
// Reverse.
func (c *Curve) Reverse() *Curve {
	if len(c.Vertices) == 0 {
		return &Curve{Accuracy: c.Accuracy}
	}
	spans := c.Spans()
	out := &Curve{
		Vertices: make([]Vertex, 0, len(c.Vertices)),
		Accuracy: c.Accuracy,
	}
	out.Vertices = append(out.Vertices, NewLineVertex(c.EndPoint()))
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		v := s.Vertex
		if !v.IsArc() {
			out.Vertices = append(out.Vertices, NewLineVertex(s.Start))
			continue
		}
		out.Vertices = append(out.Vertices, NewArcVertex(s.Start, v.Center, !v.CCW()))
	}
	return out
}

// ChangeStart returns a new closed Curve equivalent to c but beginning at
// vertex index i (1-based span index into the original vertex list, i.e.
// the vertex that becomes the new curve's second vertex is Vertices[i]).
// The curve must already be closed; the caller is responsible for checking
// (ErrCurveNotClosed is returned otherwise).
func (c *Curve) ChangeStart(i int) (*Curve, error) {
	if !c.IsClosed(c.Accuracy) {
		return nil, ErrCurveNotClosed
	}
	n := len(c.Vertices)
	if n < 2 {
		return nil, ErrEmptyCurve
	}
	i = ((i-1)%(n-1) + (n - 1)) % (n - 1)
	i++ // back to 1-based index into Vertices

	out := &Curve{Accuracy: c.Accuracy}
	out.Vertices = append(out.Vertices, NewLineVertex(c.Vertices[i-1].End))
	for k := i; k < n; k++ {
		out.Vertices = append(out.Vertices, c.Vertices[k])
	}
	for k := 1; k < i; k++ {
		out.Vertices = append(out.Vertices, c.Vertices[k])
	}
	// Close the loop back to the new start point.
	last := out.Vertices[len(out.Vertices)-1]
	if !last.End.Equal(out.Vertices[0].End, c.Accuracy) {
		out.Vertices = append(out.Vertices, NewLineVertex(out.Vertices[0].End))
	}
	return out, nil
}

// ChangeStartAtPoint returns a new closed Curve equivalent to c but
// beginning at p, a point assumed to already lie on the curve (within
// Accuracy) — typically the result of a prior NearestPoint call against
// this same curve. If p does not coincide with an existing vertex, the
// span it falls on is split in two (preserving arc center/direction for
// arc spans) before rotating (original_source/src/AreaPocket.cpp's
// CCurve::ChangeStart(Point), used throughout the island-absorption
// bookkeeping to re-anchor a curve at its point of tangency with a
// parent ring).
func (c *Curve) ChangeStartAtPoint(p geom.Point) (*Curve, error) {
	if !c.IsClosed(c.Accuracy) {
		return nil, ErrCurveNotClosed
	}
	_, spanIdx, t := c.NearestPoint(p)
	if spanIdx < 0 {
		return nil, ErrEmptyCurve
	}
	if t <= 1e-9 {
		return c.ChangeStart(spanIdx + 1)
	}
	if t >= 1-1e-9 {
		return c.ChangeStart(spanIdx + 2)
	}

	split := &Curve{Accuracy: c.Accuracy}
	split.Vertices = append(split.Vertices, c.Vertices[:spanIdx+1]...)
	v := c.Vertices[spanIdx+1]
	if v.IsArc() {
		split.Vertices = append(split.Vertices, NewArcVertex(p, v.Center, v.CCW()))
		split.Vertices = append(split.Vertices, NewArcVertex(v.End, v.Center, v.CCW()))
	} else {
		split.Vertices = append(split.Vertices, NewLineVertex(p))
		split.Vertices = append(split.Vertices, NewLineVertex(v.End))
	}
	split.Vertices = append(split.Vertices, c.Vertices[spanIdx+2:]...)
	return split.ChangeStart(spanIdx + 2)
}

// NearestPoint returns the closest point on the curve to p, the span index
// it falls on, and the parameter within that span.
func (c *Curve) NearestPoint(p geom.Point) (geom.Point, int, float64) {
	spans := c.Spans()
	if len(spans) == 0 {
		return c.Start(), -1, 0
	}
	bestIdx := 0
	bestPt, bestT := spans[0].NearestPoint(p)
	bestDist := bestPt.Distance(p)
	for i := 1; i < len(spans); i++ {
		pt, t := spans[i].NearestPoint(p)
		if d := pt.Distance(p); d < bestDist {
			bestDist, bestPt, bestT, bestIdx = d, pt, t, i
		}
	}
	return bestPt, bestIdx, bestT
}

// NearestPointToCurve returns the point on c closest to any point of o,
// and that distance. Sampled over o's flattened vertices, which is exact
// for line spans and accurate to o's own Accuracy for arc spans. Used by
// the pocket package's island-absorption bookkeeping to anchor a ring's
// point_on_parent against another ring (original_source/src/AreaPocket.cpp
// GetNearestPoint).
func (c *Curve) NearestPointToCurve(o *Curve) (geom.Point, float64) {
	samples := o.FlattenArcs()
	if len(samples) == 0 {
		return c.Start(), math.Inf(1)
	}
	bestPt, _, _ := c.NearestPoint(samples[0])
	bestDist := bestPt.Distance(samples[0])
	for _, p := range samples[1:] {
		pt, _, _ := c.NearestPoint(p)
		if d := pt.Distance(p); d < bestDist {
			bestDist, bestPt = d, pt
		}
	}
	return bestPt, bestDist
}

// Intersections returns every intersection point between c and o, testing
// every pair of spans.
func (c *Curve) Intersections(o *Curve, eps float64) []geom.Point {
	var out []geom.Point
	for _, s1 := range c.Spans() {
		for _, s2 := range o.Spans() {
			out = append(out, s1.Intersect(s2, eps)...)
		}
	}
	return out
}

// FlattenArcs returns the chord polygon approximating the curve: every
// vertex position, with arc spans replaced by their flattened chord points
// (spec.md §4.1). The returned slice always starts with the curve's start
// point.
func (c *Curve) FlattenArcs() []geom.Point {
	if len(c.Vertices) == 0 {
		return nil
	}
	pts := make([]geom.Point, 0, len(c.Vertices))
	pts = append(pts, c.Start())
	prev := c.Start()
	for _, v := range c.Vertices[1:] {
		if !v.IsArc() {
			pts = append(pts, v.End)
			prev = v.End
			continue
		}
		chord := geom.FlattenArc(v.Center, prev, v.End, v.CCW(), c.Accuracy)
		pts = append(pts, chord...)
		prev = v.End
	}
	return pts
}

// FitArcs returns a new Curve re-detecting runs of vertices that lie on a
// common circle (within Accuracy) as single arc vertices. This is a
// best-effort, from-scratch re-implementation (the original re-fit
// algorithm's source was not available to port, see DESIGN.md); it is
// exercised only when the fit_arcs toggle (pocket.ProcessingContext /
// area.Area) is enabled.
func (c *Curve) FitArcs() *Curve {
	n := len(c.Vertices)
	if n < 4 {
		return &Curve{Vertices: append([]Vertex(nil), c.Vertices...), Accuracy: c.Accuracy}
	}
	out := &Curve{Accuracy: c.Accuracy}
	out.Vertices = append(out.Vertices, c.Vertices[0])

	i := 1
	for i < n {
		// Try to grow a run of line vertices [i, j) that all lie on one
		// circle, starting from the point before i.
		runStart := i
		p0 := out.Vertices[len(out.Vertices)-1].End
		if c.Vertices[i].IsArc() {
			out.Vertices = append(out.Vertices, c.Vertices[i])
			i++
			continue
		}
		j := i + 1
		for j < n && !c.Vertices[j].IsArc() {
			j++
		}
		run := c.Vertices[runStart:j]
		if len(run) >= 3 {
			center, radius, ok := fitCircle(p0, run, c.Accuracy)
			if ok {
				ccw := arcRunIsCCW(p0, run, center)
				out.Vertices = append(out.Vertices, NewArcVertex(run[len(run)-1].End, center, ccw))
				i = j
				continue
			}
		}
		out.Vertices = append(out.Vertices, c.Vertices[runStart])
		i = runStart + 1
	}
	return out
}

// fitCircle attempts to fit a single circle through p0 and every vertex end
// point in run, returning its center/radius if every point lies within
// accuracy of that circle.
func fitCircle(p0 geom.Point, run []Vertex, accuracy float64) (geom.Point, float64, bool) {
	pts := make([]geom.Point, 0, len(run)+1)
	pts = append(pts, p0)
	for _, v := range run {
		pts = append(pts, v.End)
	}
	if len(pts) < 3 {
		return geom.Point{}, 0, false
	}
	center, ok := circumcenter(pts[0], pts[1], pts[2])
	if !ok {
		return geom.Point{}, 0, false
	}
	radius := center.Distance(pts[0])
	for _, p := range pts[1:] {
		if math.Abs(p.Distance(center)-radius) > accuracy {
			return geom.Point{}, 0, false
		}
	}
	return center, radius, true
}

func circumcenter(a, b, c geom.Point) (geom.Point, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		return geom.Point{}, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	return geom.Point{X: ux, Y: uy}, true
}

func arcRunIsCCW(p0 geom.Point, run []Vertex, center geom.Point) bool {
	a0 := p0.Sub(center).Angle()
	a1 := run[0].End.Sub(center).Angle()
	d := a1 - a0
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d > 0
}
