package area

import (
	"github.com/elhernes/libarea/clipper"
	"github.com/elhernes/libarea/curve"
	"github.com/elhernes/libarea/geom"
)

// OverlapType classifies the relationship between two curves (spec.md
// §4.4).
type OverlapType int

const (
	// Inside means c1 is entirely inside c2.
	Inside OverlapType = iota
	// Outside means c2 is entirely inside c1.
	Outside
	// Siblings means c1 and c2 are disjoint.
	Siblings
	// Crossing means c1 and c2 partially overlap.
	Crossing
)

// String implements fmt.Stringer.
func (o OverlapType) String() string {
	switch o {
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	case Siblings:
		return "Siblings"
	case Crossing:
		return "Crossing"
	default:
		return "OverlapType(?)"
	}
}

// GetOverlapType classifies the overlap between c1 and c2 by wrapping each
// in a single-curve area and delegating to GetOverlapTypeAreas (spec.md
// §4.4). Used both by Reorder's equivalent tree construction needs (via
// Union64Tree, see SPEC_FULL.md §4) and independently by the spiral pocket
// generator's island/offset classification (spec.md §4.5 step 3).
func GetOverlapType(c1, c2 *curve.Curve, accuracy float64) OverlapType {
	return GetOverlapTypeAreas(singleCurveArea(c1, accuracy), singleCurveArea(c2, accuracy))
}

// GetOverlapTypeAreas classifies the overlap between two (possibly
// multi-curve) areas by testing emptiness of their Boolean combinations
// (spec.md §4.4): a1-a2=∅ => Inside, a2-a1=∅ => Outside, a1∩a2=∅ =>
// Siblings, else Crossing. The pocket package's island-absorption
// bookkeeping (spec.md §4.5 steps 3-6) tests whole offset areas this way,
// not just single curves.
func GetOverlapTypeAreas(a1, a2 *Area) OverlapType {
	diff12 := cloneArea(a1)
	_ = diff12.Subtract(a2)
	if diff12.IsEmpty() {
		return Inside
	}

	diff21 := cloneArea(a2)
	_ = diff21.Subtract(a1)
	if diff21.IsEmpty() {
		return Outside
	}

	inter := cloneArea(a1)
	_ = inter.Intersect(a2)
	if inter.IsEmpty() {
		return Siblings
	}
	return Crossing
}

func singleCurveArea(c *curve.Curve, accuracy float64) *Area {
	return &Area{Curves: []*curve.Curve{c}, Accuracy: accuracy}
}

func cloneArea(a *Area) *Area {
	curves := make([]*curve.Curve, len(a.Curves))
	copy(curves, a.Curves)
	return &Area{Curves: curves, Accuracy: a.Accuracy, FitArcs: a.FitArcs}
}

// IsInside reports whether point p lies within the area's region, honoring
// islands: p is inside when an odd number of the area's curves contain it
// (each curve is tested on its own, so winding direction plays no part),
// and a point on any curve's boundary counts as inside.
func (a *Area) IsInside(p geom.Point) bool {
	pt := clipper.Point64{
		X: int64(p.X * ScaleFactor),
		Y: int64(p.Y * ScaleFactor),
	}
	paths := toPaths64(a.Curves)
	inside := false
	for _, path := range paths {
		loc := clipper.PointInPolygon64(pt, path, clipper.NonZero)
		if loc == clipper.OnBoundary {
			return true
		}
		if loc == clipper.Inside {
			inside = !inside
		}
	}
	return inside
}
