// Package area implements the planar-region model of spec.md §3/§4: an
// ordered collection of curves, its Boolean operators, inward/outward
// offset, Minkowski thickening, and the reorder/split operations that
// canonicalize and partition a region into single-outer sub-areas.
//
// Booleans, Offset, Thicken, and Reorder are all implemented on top of the
// vendored clipper engine (package github.com/elhernes/libarea/clipper) —
// see SPEC_FULL.md §2 and §4 for the grounding of each substitution.
package area

import (
	"math"

	"github.com/elhernes/libarea/clipper"
	"github.com/elhernes/libarea/curve"
	"github.com/elhernes/libarea/geom"
)

// ScaleFactor is the fixed-point scale applied before handing coordinates to
// the integer clipping engine (spec.md §4.3: "multiply coordinates by a
// fixed integer factor, e.g. 10^6").
const ScaleFactor = 1e6

// Area is an ordered list of curves plus a chord-error tolerance, modeling
// the planar region of spec.md §3. FitArcs mirrors the process-wide toggle
// the original carried as a global (spec.md §9): here it is a plain field,
// consulted by every operation that rebuilds m_curves from the clipping
// engine.
type Area struct {
	Curves   []*curve.Curve
	Accuracy float64
	FitArcs  bool
}

// NewArea returns an empty Area with the given chord-error accuracy.
// Returns ErrInvalidAccuracy if accuracy is not positive (spec.md §7).
func NewArea(accuracy float64) (*Area, error) {
	if accuracy <= 0 {
		return nil, ErrInvalidAccuracy
	}
	return &Area{Accuracy: accuracy}, nil
}

// AddCurve appends c to the area.
func (a *Area) AddCurve(c *curve.Curve) {
	a.Curves = append(a.Curves, c)
}

// IsEmpty reports whether the area has no curves.
func (a *Area) IsEmpty() bool {
	return len(a.Curves) == 0
}

// BoundingBox returns the union of every curve's bounding box.
func (a *Area) BoundingBox() geom.Box {
	b := geom.EmptyBox()
	for _, c := range a.Curves {
		b = b.Union(c.BoundingBox())
	}
	return b
}

// NearestPoint returns the closest point on the area's curves to p, and the
// index of the curve it lies on.
func (a *Area) NearestPoint(p geom.Point) (geom.Point, int) {
	bestIdx := -1
	var bestPt geom.Point
	bestDist := math.Inf(1)
	for i, c := range a.Curves {
		pt, _, _ := c.NearestPoint(p)
		if d := pt.Distance(p); d < bestDist {
			bestDist, bestPt, bestIdx = d, pt, i
		}
	}
	return bestPt, bestIdx
}

// toPaths64 flattens and scales every curve of a into integer polygons,
// reversing vertex order to match the clipping engine's winding convention
// (spec.md §4.3 step 1: "the engine's winding convention is opposite the
// Area convention").
func toPaths64(curves []*curve.Curve) clipper.Paths64 {
	paths := make(clipper.Paths64, 0, len(curves))
	for _, c := range curves {
		paths = append(paths, pointsToPath64(c.FlattenArcs()))
	}
	return clipper.ReversePaths64(paths)
}

func pointsToPath64(pts []geom.Point) clipper.Path64 {
	path := make(clipper.Path64, len(pts))
	for i, p := range pts {
		path[i] = clipper.Point64{
			X: int64(math.Round(p.X * ScaleFactor)),
			Y: int64(math.Round(p.Y * ScaleFactor)),
		}
	}
	return path
}

// fromPaths64 reverses toPaths64: scales integer polygons back to model
// units, reverses winding, and builds one closed line-vertex Curve per
// path. If fitArcs is set, each curve is re-detected for arcs.
func fromPaths64(paths clipper.Paths64, accuracy float64, fitArcs bool) []*curve.Curve {
	paths = clipper.ReversePaths64(paths)
	out := make([]*curve.Curve, 0, len(paths))
	for _, p := range paths {
		c := path64ToCurve(p, accuracy)
		if c == nil {
			continue
		}
		if fitArcs {
			c = c.FitArcs()
		}
		out = append(out, c)
	}
	return out
}

func path64ToCurve(p clipper.Path64, accuracy float64) *curve.Curve {
	if len(p) < 3 {
		return nil
	}
	pts := path64ToPoints(p)
	c := curve.NewCurve(pts[0], accuracy)
	for _, pt := range pts[1:] {
		c.AddLineVertex(pt)
	}
	c.AddLineVertex(pts[0])
	return c
}

func path64ToPoints(p clipper.Path64) []geom.Point {
	pts := make([]geom.Point, len(p))
	for i, pt := range p {
		pts[i] = geom.Point{X: float64(pt.X) / ScaleFactor, Y: float64(pt.Y) / ScaleFactor}
	}
	return pts
}
