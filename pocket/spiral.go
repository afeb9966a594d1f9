package pocket

import (
	"fmt"

	"github.com/elhernes/libarea/area"
	"github.com/elhernes/libarea/curve"
	"github.com/elhernes/libarea/geom"
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// curveTreeNode is one ring of the spiral generator's concentric-offset
// tree: a single closed curve plus the islands still pending absorption
// into it, and the children produced once those islands (or the ring's own
// split-off remnants) are absorbed (original_source/src/AreaPocket.cpp
// CurveTree, spec.md §4.5).
type curveTreeNode struct {
	Ring          *curve.Curve
	PointOnParent geom.Point
	Inners        []*curveTreeNode
	OffsetIslands []*islandAndOffset
}

func newCurveTreeRoot(ring *curve.Curve) *curveTreeNode {
	return &curveTreeNode{Ring: ring}
}

// attachChild anchors ring at the point on it nearest to parent's own
// nearest point to ring, then returns a new node wrapping the rotated
// curve (original_source/src/AreaPocket.cpp's repeated
// point_on_parent/NearestPoint/ChangeStart sequence).
func attachChild(parentRing, ring *curve.Curve) (*curveTreeNode, error) {
	pointOnParent, _ := parentRing.NearestPointToCurve(ring)
	anchor, _, _ := ring.NearestPoint(pointOnParent)
	rotated, err := ring.ChangeStartAtPoint(anchor)
	if err != nil {
		return nil, err
	}
	return &curveTreeNode{Ring: rotated, PointOnParent: pointOnParent}, nil
}

// buildCurveTree grows the tree rooted at root by repeatedly shrinking each
// node's ring by stepover, absorbing any island whose offset the shrunk
// ring has reached or crossed, and splitting the shrunk remainder into new
// child rings (original_source/src/AreaPocket.cpp CurveTree::MakeOffsets).
func buildCurveTree(root *curveTreeNode, stepover, accuracy float64, ctx *ProcessingContext) error {
	toDo := []*curveTreeNode{root}
	var islandsAdded []*curveTreeNode

	for len(toDo) > 0 {
		if err := ctx.checkAbort(); err != nil {
			return err
		}
		node := toDo[0]
		toDo = toDo[1:]
		next, err := makeOffsets2(node, stepover, accuracy, &islandsAdded, ctx)
		if err != nil {
			return err
		}
		toDo = append(toDo, next...)
	}
	return nil
}

// makeOffsets2 performs one node's worth of shrink/absorb/split, returning
// the new child nodes still needing their own MakeOffsets pass
// (original_source/src/AreaPocket.cpp CurveTree::MakeOffsets2).
func makeOffsets2(node *curveTreeNode, stepover, accuracy float64, islandsAdded *[]*curveTreeNode, ctx *ProcessingContext) ([]*curveTreeNode, error) {
	if err := ctx.checkAbort(); err != nil {
		return nil, err
	}

	smaller, err := area.NewArea(accuracy)
	if err != nil {
		return nil, err
	}
	smaller.AddCurve(node.Ring)
	if err := smaller.Offset(stepover); err != nil {
		return nil, err
	}

	var toDo []*curveTreeNode
	pending := append([]*islandAndOffset(nil), node.OffsetIslands...)

	for {
		triggerIdx := -1
		for i, isl := range pending {
			if area.GetOverlapTypeAreas(isl.Offset, smaller) != area.Inside {
				triggerIdx = i
				break
			}
		}
		if triggerIdx < 0 {
			break
		}
		if err := ctx.checkAbort(); err != nil {
			return nil, err
		}

		absorbed, newNodes, err := floodAbsorb(node, pending[triggerIdx], pending, islandsAdded)
		if err != nil {
			return nil, err
		}
		for _, isl := range absorbed {
			if err := smaller.Subtract(isl.Offset); err != nil {
				return nil, err
			}
		}
		toDo = append(toDo, newNodes...)
		pending = removeIslands(pending, absorbed)
	}
	node.OffsetIslands = pending

	if ctx != nil {
		ctx.setProgress(ctx.processingDone + ctx.makeOffsetsIncrement)
		if ctx.processingDone > ctx.afterMakeOffsetsLength {
			ctx.processingDone = ctx.afterMakeOffsetsLength
		}
	}

	pieces, err := smaller.Split()
	if err != nil {
		return nil, err
	}
	for _, piece := range pieces {
		if len(piece.Curves) == 0 {
			continue
		}
		first := piece.Curves[0]

		nearPt, nearestNode := getNearestPoint(node, *islandsAdded, first)
		anchor, _, _ := first.NearestPoint(nearPt)
		rotated, err := first.ChangeStartAtPoint(anchor)
		if err != nil {
			return nil, err
		}
		child := &curveTreeNode{Ring: rotated, PointOnParent: nearPt}

		for _, isl := range pending {
			if area.GetOverlapTypeAreas(isl.Offset, piece) == area.Inside {
				child.OffsetIslands = append(child.OffsetIslands, isl)
			}
		}

		nearestNode.Inners = append(nearestNode.Inners, child)
		toDo = append(toDo, child)
	}

	return toDo, nil
}

// getNearestPoint finds the closest point to testCurve among root's own
// ring and every island ring added to the tree so far, returning that
// point and the node it belongs to (original_source/src/AreaPocket.cpp's
// free function GetNearestPoint).
func getNearestPoint(root *curveTreeNode, islandsAdded []*curveTreeNode, testCurve *curve.Curve) (geom.Point, *curveTreeNode) {
	bestNode := root
	bestPt, bestDist := root.Ring.NearestPointToCurve(testCurve)
	for _, isl := range islandsAdded {
		pt, dist := isl.Ring.NearestPointToCurve(testCurve)
		if dist < bestDist {
			bestDist, bestPt, bestNode = dist, pt, isl
		}
	}
	return bestPt, bestNode
}

// floodAbsorb walks the connected component of pending islands reachable
// from trigger via TouchingOffsets links, attaching each one to the tree:
// the trigger attaches to node itself, and every island discovered through
// a touching link attaches to whichever node absorbed the island that
// found it — exactly the parent relationship a breadth-first traversal of
// the touching-offsets graph produces
// (original_source/src/AreaPocket.cpp's touching_list/add_to bookkeeping).
func floodAbsorb(node *curveTreeNode, trigger *islandAndOffset, pending []*islandAndOffset, islandsAdded *[]*curveTreeNode) ([]*islandAndOffset, []*curveTreeNode, error) {
	ids := make(map[*islandAndOffset]string, len(pending))
	islands := make(map[string]*islandAndOffset, len(pending))
	g := core.NewGraph(core.WithDirected(false))
	for i, isl := range pending {
		id := fmt.Sprintf("island-%d", i)
		ids[isl] = id
		islands[id] = isl
		if err := g.AddVertex(id); err != nil {
			return nil, nil, err
		}
	}
	for _, isl := range pending {
		for _, t := range isl.TouchingOffsets {
			tid, ok := ids[t]
			if !ok {
				continue
			}
			if _, err := g.AddEdge(ids[isl], tid, 1); err != nil {
				continue
			}
		}
	}

	result, err := bfs.BFS(g, ids[trigger])
	if err != nil {
		return nil, nil, err
	}

	nodeByID := map[string]*curveTreeNode{}
	var absorbed []*islandAndOffset
	var created []*curveTreeNode
	for _, id := range result.Order {
		isl := islands[id]
		parent := node
		if pid, ok := result.Parent[id]; ok && pid != "" {
			if pn, ok := nodeByID[pid]; ok {
				parent = pn
			}
		}

		child, err := attachChild(parent.Ring, isl.Island)
		if err != nil {
			return nil, nil, err
		}
		parent.Inners = append(parent.Inners, child)
		*islandsAdded = append(*islandsAdded, child)
		nodeByID[id] = child

		for _, innerVoid := range isl.IslandInners {
			grand, err := attachChild(child.Ring, innerVoid)
			if err != nil {
				return nil, nil, err
			}
			child.Inners = append(child.Inners, grand)
			created = append(created, grand)
		}

		absorbed = append(absorbed, isl)
	}
	return absorbed, created, nil
}

func removeIslands(pending, absorbed []*islandAndOffset) []*islandAndOffset {
	skip := make(map[*islandAndOffset]bool, len(absorbed))
	for _, isl := range absorbed {
		skip[isl] = true
	}
	out := pending[:0:0]
	for _, isl := range pending {
		if !skip[isl] {
			out = append(out, isl)
		}
	}
	return out
}
