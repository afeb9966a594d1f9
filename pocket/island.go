package pocket

import (
	"github.com/elhernes/libarea/area"
	"github.com/elhernes/libarea/curve"
)

// islandAndOffset pairs an island curve (a hole boundary of the already
// tool-offset sub-area) with its own stepover-outward offset, used to track
// when a shrinking ring first touches — and must absorb — that island
// (original_source/src/AreaPocket.cpp IslandAndOffset, spec.md §4.5 step
// 3). Offsetting the island outward by stepover, rather than re-applying
// the tool radius, models the island's growth as the spiral's concentric
// rings shrink by stepover on each pass.
type islandAndOffset struct {
	Island *curve.Curve

	// Offset is the single-curve area enclosing the island's
	// stepover-enlarged outline (island reversed to an outer-style
	// winding, then dilated outward by stepover).
	Offset *area.Area

	// IslandInners holds any curves that appeared inside Offset beyond
	// its first (the island's own growth can itself enclose further
	// inner voids when the island is non-convex); each is reversed back
	// to hole winding before use.
	IslandInners []*curve.Curve

	// TouchingOffsets lists the other islandAndOffsets in the same
	// sub-area whose Offset areas cross this one's (spec.md §4.5 step
	// 3's "flood the touching-offsets graph"). Populated by
	// markOverlappingOffsetIslands.
	TouchingOffsets []*islandAndOffset
}

// newIslandAndOffset builds one islandAndOffset for a single island curve
// of an already tool-offset sub-area.
func newIslandAndOffset(island *curve.Curve, stepover, accuracy float64) (*islandAndOffset, error) {
	off, err := area.NewArea(accuracy)
	if err != nil {
		return nil, err
	}
	off.AddCurve(island.Reverse())
	// Offset's sign convention is positive=inward; negating stepover
	// here dilates the (now outer-wound) island boundary outward.
	if err := off.Offset(-stepover); err != nil {
		return nil, err
	}

	result := &islandAndOffset{Island: island, Offset: off}
	if len(off.Curves) > 1 {
		for _, c := range off.Curves[1:] {
			result.IslandInners = append(result.IslandInners, c.Reverse())
		}
		off.Curves = off.Curves[:1]
	}
	return result, nil
}

// markOverlappingOffsetIslands cross-classifies every pair of island
// offsets in a sub-area and records bidirectional touching links wherever
// their offset areas cross (original_source/src/AreaPocket.cpp
// MarkOverlappingOffsetIslands).
func markOverlappingOffsetIslands(islands []*islandAndOffset) {
	for i := 0; i < len(islands); i++ {
		for j := i + 1; j < len(islands); j++ {
			o1, o2 := islands[i], islands[j]
			if area.GetOverlapTypeAreas(o1.Offset, o2.Offset) == area.Crossing {
				o1.TouchingOffsets = append(o1.TouchingOffsets, o2)
				o2.TouchingOffsets = append(o2.TouchingOffsets, o1)
			}
		}
	}
}
