package pocket

import (
	"sort"

	"github.com/elhernes/libarea/curve"
	"github.com/elhernes/libarea/geom"
)

// flattenCurveTree walks the tree depth-first, splicing each ring's own
// perimeter together with line-in/line-out detours to every child's
// anchor point, producing the single continuous toolpath curve the spiral
// generator emits (original_source/src/AreaPocket.cpp GetCurveItem;
// ported here as plain recursion rather than the original's explicit
// worklist, since tree depth tracks island nesting rather than pocket
// complexity and stays shallow in practice).
func flattenCurveTree(root *curveTreeNode, accuracy float64) *curve.Curve {
	out := &curve.Curve{Accuracy: accuracy}
	appendRing(root, &out.Vertices, accuracy)
	return out
}

func appendRing(node *curveTreeNode, out *[]curve.Vertex, accuracy float64) {
	ring := node.Ring
	*out = append(*out, curve.NewLineVertex(ring.Start()))

	remaining := append([]*curveTreeNode(nil), node.Inners...)
	for _, sp := range ring.Spans() {
		type placedInner struct {
			t float64
			n *curveTreeNode
		}
		var onSpan []placedInner
		var kept []*curveTreeNode
		for _, inner := range remaining {
			near, t := sp.NearestPoint(inner.PointOnParent)
			if near.Distance(inner.PointOnParent) <= accuracy {
				onSpan = append(onSpan, placedInner{t, inner})
			} else {
				kept = append(kept, inner)
			}
		}
		remaining = kept
		sort.Slice(onSpan, func(i, j int) bool { return onSpan[i].t < onSpan[j].t })

		for _, p := range onSpan {
			last := (*out)[len(*out)-1].End
			if last.Distance(p.n.PointOnParent) > accuracy {
				*out = append(*out, vertexLike(sp.Vertex, p.n.PointOnParent))
			}
			appendRing(p.n, out, accuracy)
			*out = append(*out, curve.NewLineVertex(p.n.PointOnParent))
		}

		last := (*out)[len(*out)-1].End
		if last.Distance(sp.End()) > accuracy {
			*out = append(*out, vertexLike(sp.Vertex, sp.End()))
		}
	}

	for _, inner := range remaining {
		last := (*out)[len(*out)-1].End
		if last.Distance(inner.PointOnParent) > accuracy {
			*out = append(*out, curve.NewLineVertex(inner.PointOnParent))
		}
		appendRing(inner, out, accuracy)
		*out = append(*out, curve.NewLineVertex(inner.PointOnParent))
	}
}

// vertexLike builds a vertex of the same kind (and, for arcs, center and
// direction) as v but ending at a new point — used to carry a span's
// curvature through a partial sub-span up to a detour point.
func vertexLike(v curve.Vertex, end geom.Point) curve.Vertex {
	if v.IsArc() {
		return curve.NewArcVertex(end, v.Center, v.CCW())
	}
	return curve.NewLineVertex(end)
}
