package area

import (
	"github.com/elhernes/libarea/clipper"
	"github.com/elhernes/libarea/curve"
)

// Reorder rebuilds the area's curve list so that outers are CCW and
// islands are CW, each nested under its owning outer (spec.md §4.4).
//
// The original's Reorder is a hand-rolled recursive insertion tree
// (CInnerCurves, see original_source/src/AreaOrderer.cpp) that classifies
// each new curve against existing siblings via GetOverlapType and merges
// crossing pairs by union. A single non-zero-fill union of every curve
// already produces exactly the required invariants (outers pairwise
// non-overlapping, islands disjoint, crossing pairs merged), with the
// nesting read straight off the vendored engine's own PolyTree64 — see
// SPEC_FULL.md §4 for the full argument. Reorder is idempotent: calling it
// twice in a row yields the same curve list (spec.md §8).
func (a *Area) Reorder() error {
	if len(a.Curves) == 0 {
		return nil
	}
	tree, err := a.unionTree()
	if err != nil {
		return err
	}
	var out []*curve.Curve
	var walk func(node *clipper.PolyPath64)
	walk = func(node *clipper.PolyPath64) {
		for _, child := range node.Children() {
			if c := orientedCurveFromNode(child, a.Accuracy, a.FitArcs); c != nil {
				out = append(out, c)
			}
			walk(child)
		}
	}
	walk(tree)
	a.Curves = out
	return nil
}

// Split partitions the area into one Area per outer ring with its directly
// nested islands attached (spec.md §6 Split(out_areas)). An outer ring
// nested inside an island (a separate pocket living inside a hole) becomes
// its own entry in the returned slice, not a child of the first.
func (a *Area) Split() ([]*Area, error) {
	if len(a.Curves) == 0 {
		return nil, nil
	}
	tree, err := a.unionTree()
	if err != nil {
		return nil, err
	}
	var result []*Area
	var gather func(node *clipper.PolyPath64)
	gather = func(node *clipper.PolyPath64) {
		for _, outerNode := range node.Children() {
			sub := &Area{Accuracy: a.Accuracy, FitArcs: a.FitArcs}
			if outerCurve := orientedCurveFromNode(outerNode, a.Accuracy, a.FitArcs); outerCurve != nil {
				sub.AddCurve(outerCurve)
			}
			for _, holeNode := range outerNode.Children() {
				if islandCurve := orientedCurveFromNode(holeNode, a.Accuracy, a.FitArcs); islandCurve != nil {
					sub.AddCurve(islandCurve)
				}
				gather(holeNode)
			}
			result = append(result, sub)
		}
	}
	gather(tree)
	return result, nil
}

func (a *Area) unionTree() (*clipper.PolyTree64, error) {
	subjects := toPaths64(a.Curves)
	tree, _, err := clipper.Union64Tree(subjects, nil, clipper.NonZero)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// orientedCurveFromNode converts one PolyTree64 node's polygon into a Curve
// whose orientation matches its role: outers (IsHole()==false) are forced
// CCW, islands (IsHole()==true) are forced CW, per spec.md §3/§4.4.
func orientedCurveFromNode(node *clipper.PolyPath64, accuracy float64, fitArcs bool) *curve.Curve {
	c := path64ToCurve(node.Polygon(), accuracy)
	if c == nil {
		return nil
	}
	if node.IsHole() {
		if !c.IsClockwise() {
			c = c.Reverse()
		}
	} else if c.IsClockwise() {
		c = c.Reverse()
	}
	if fitArcs {
		c = c.FitArcs()
	}
	return c
}
