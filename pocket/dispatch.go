package pocket

import (
	"github.com/elhernes/libarea/area"
	"github.com/elhernes/libarea/curve"
)

// MakePocketToolpath runs one sub-area through the mode dispatch of spec.md
// §4.7: the sub-area is inward-offset by tool_radius+extra_offset once,
// then routed to the zig-zag, spiral, single-offset, or combined generator
// (original_source/src/Area.cpp CArea::MakePocketToolpath). The returned
// curves are the toolpath(s) for this one sub-area.
func MakePocketToolpath(a *area.Area, params Params, ctx *ProcessingContext) ([]*curve.Curve, error) {
	if ctx == nil {
		ctx = NewProcessingContext()
	}
	offset, err := area.NewArea(a.Accuracy)
	if err != nil {
		return nil, err
	}
	offset.FitArcs = a.FitArcs || ctx.FitArcs
	offset.Curves = append(offset.Curves, a.Curves...)
	if err := offset.Offset(params.StartOffset()); err != nil {
		return nil, err
	}

	var out []*curve.Curve
	switch params.Mode {
	case ZigZag, ZigZagThenSingleOffset:
		zz, err := runZigZag(offset, params, ctx)
		if err != nil {
			return out, err
		}
		out = append(out, zz...)

	case Spiral:
		subAreas, err := offset.Split()
		if err != nil {
			return out, err
		}
		if len(subAreas) > 0 {
			ctx.singleAreaProcessingLength /= float64(len(subAreas))
		}
		for _, sub := range subAreas {
			if err := ctx.checkAbort(); err != nil {
				return out, err
			}
			c, err := makeOnePocketCurve(sub, params, ctx)
			if err != nil {
				return out, err
			}
			if c != nil {
				out = append(out, c)
			}
		}
	}

	if params.Mode == SingleOffset || params.Mode == ZigZagThenSingleOffset {
		out = append(out, offset.Curves...)
	}

	return out, nil
}

// makeOnePocketCurve runs the spiral generator on a single already-offset,
// single-outer sub-area (original_source/src/AreaPocket.cpp
// CArea::MakeOnePocketCurve).
func makeOnePocketCurve(sub *area.Area, params Params, ctx *ProcessingContext) (*curve.Curve, error) {
	if sub.IsEmpty() {
		return nil, nil
	}

	root := newCurveTreeRoot(sub.Curves[0])
	for _, islandCurve := range sub.Curves[1:] {
		io, err := newIslandAndOffset(islandCurve, params.Stepover, sub.Accuracy)
		if err != nil {
			return nil, err
		}
		root.OffsetIslands = append(root.OffsetIslands, io)
	}
	markOverlappingOffsetIslands(root.OffsetIslands)

	ctx.beginSubArea(expectedWorklistSteps(root))
	if err := buildCurveTree(root, params.Stepover, sub.Accuracy, ctx); err != nil {
		return nil, err
	}

	result := flattenCurveTree(root, sub.Accuracy)
	if ctx.FitArcs {
		result = result.FitArcs()
	}
	return result, nil
}

// expectedWorklistSteps estimates the number of concentric shrink passes
// the spiral generator will need, for progress-reporting purposes only: a
// quarter of the root ring's bounding-box width plus height, plus one. The
// stepover is not taken into account.
func expectedWorklistSteps(root *curveTreeNode) int {
	box := root.Ring.BoundingBox()
	w, h := box.Width(), box.Height()
	if w <= 0 || h <= 0 {
		return 1
	}
	n := int((w+h)/4 + 1)
	if n < 1 {
		n = 1
	}
	return n
}

// SplitAndMakePocketToolpath splits a full Area into single-outer
// sub-areas and runs MakePocketToolpath on each, in Split's output order
// (spec.md §4.7, §5 ordering contract;
// original_source/src/Area.cpp CArea::SplitAndMakePocketToolpath).
func SplitAndMakePocketToolpath(a *area.Area, params Params, ctx *ProcessingContext) ([]*curve.Curve, error) {
	if ctx == nil {
		ctx = NewProcessingContext()
	}
	subAreas, err := a.Split()
	if err != nil {
		return nil, err
	}
	ctx.initLengths(len(subAreas))

	var out []*curve.Curve
	for _, sub := range subAreas {
		if err := ctx.checkAbort(); err != nil {
			return out, err
		}
		base := ctx.ProcessingDone()
		curves, err := MakePocketToolpath(sub, params, ctx)
		out = append(out, curves...)
		if err != nil {
			return out, err
		}
		ctx.finishSubArea(base)
	}
	return out, nil
}
