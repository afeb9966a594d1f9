package area

import (
	"github.com/elhernes/libarea/clipper"
	"github.com/elhernes/libarea/geom"
)

// defaultMiterLimit matches the vendored engine's own documented default
// (clipper/offset.go's ClipperOffset doc comments reference 2.0).
const defaultMiterLimit = 2.0

// Offset inflates/deflates the area by value, in model units: positive
// value means inward (erosion), negative means outward (dilation) — see
// spec.md §6. Internally this is ClipperOffset.Execute(-value*ScaleFactor),
// because InflatePaths64/ClipperOffset's own delta sign is the opposite
// (positive = dilate) and is normalized against each path's actual winding
// regardless of how the caller's curves happen to be wound (see
// SPEC_FULL.md §4). Offset always re-normalizes via Reorder afterward
// (spec.md §3 Lifecycle).
func (a *Area) Offset(value float64) error {
	co := clipper.NewClipperOffset(defaultMiterLimit, a.Accuracy*ScaleFactor)
	paths := toPaths64(a.Curves)
	co.AddPaths(paths, clipper.Round, clipper.ClosedPolygon)
	result, err := co.Execute(-value * ScaleFactor)
	if err != nil {
		return err
	}
	a.Curves = fromPaths64(result, a.Accuracy, a.FitArcs)
	return a.Reorder()
}

// Thicken performs a Minkowski sum of every curve in the area with a disk of
// the given radius (spec.md §6 Thicken(radius); GLOSSARY "Thicken"). Each
// curve is swept independently via the vendored engine's MinkowskiSum64 and
// the per-curve sweeps are then unioned together, since MinkowskiSum64 only
// unions the quadrilaterals generated by a single path's sweep.
func (a *Area) Thicken(radius float64) error {
	if a.IsEmpty() {
		return ErrEmptyArea
	}
	pattern := diskPattern(radius, a.Accuracy)
	var swept clipper.Paths64
	for _, c := range a.Curves {
		path := pointsToPath64(c.FlattenArcs())
		isClosed := c.IsClosed(a.Accuracy)
		sum, err := clipper.MinkowskiSum64(pattern, path, isClosed)
		if err != nil {
			return err
		}
		swept = append(swept, sum...)
	}
	unioned, err := clipper.Union64(swept, nil, clipper.NonZero)
	if err != nil {
		return err
	}
	a.Curves = fromPaths64(unioned, a.Accuracy, a.FitArcs)
	return a.Reorder()
}

// diskPattern returns a chord-flattened circle of the given radius, scaled
// to integer coordinates, centered at the origin — the Minkowski "pattern"
// swept along each curve by Thicken.
func diskPattern(radius, accuracy float64) clipper.Path64 {
	center := geom.Point{}
	start := geom.Point{X: radius, Y: 0}
	opposite := geom.Point{X: -radius, Y: 0}
	pts := []geom.Point{start}
	pts = append(pts, geom.FlattenArc(center, start, opposite, true, accuracy)...)
	pts = append(pts, geom.FlattenArc(center, opposite, start, true, accuracy)...)
	// Drop the duplicated closing point (FlattenArc's last emitted point
	// equals start again).
	return pointsToPath64(pts[:len(pts)-1])
}
