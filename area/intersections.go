package area

import (
	"github.com/elhernes/libarea/curve"
	"github.com/elhernes/libarea/geom"
)

// SpanIntersections returns every intersection point between span and any
// span of any curve in the area (original_source/src/Area.h
// SpanIntersections).
func (a *Area) SpanIntersections(span curve.Span) []geom.Point {
	var out []geom.Point
	for _, c := range a.Curves {
		for _, s := range c.Spans() {
			out = append(out, span.Intersect(s, a.Accuracy)...)
		}
	}
	return out
}

// CurveIntersections returns every intersection point between c and any
// curve in the area (original_source/src/Area.h CurveIntersections).
func (a *Area) CurveIntersections(c *curve.Curve) []geom.Point {
	var out []geom.Point
	for _, own := range a.Curves {
		out = append(out, c.Intersections(own, a.Accuracy)...)
	}
	return out
}

// InsideCurves returns every curve of the area that lies entirely inside c
// (original_source/src/Area.h InsideCurves).
func (a *Area) InsideCurves(c *curve.Curve) []*curve.Curve {
	var out []*curve.Curve
	for _, own := range a.Curves {
		if GetOverlapType(own, c, a.Accuracy) == Inside {
			out = append(out, own)
		}
	}
	return out
}
