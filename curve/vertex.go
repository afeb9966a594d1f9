// Package curve implements the ordered-vertex polyline-with-arcs model
// (spec.md §3 Vertex/Span/Curve) that the rest of the module builds areas
// and toolpaths out of.
package curve

import "github.com/elhernes/libarea/geom"

// Kind tags a Vertex as a straight span or one of the two arc directions.
type Kind int

const (
	// Line is a straight span from the previous endpoint to End.
	Line Kind = iota
	// ArcCCW is a counter-clockwise arc span, centered at Center.
	ArcCCW
	// ArcCW is a clockwise arc span, centered at Center.
	ArcCW
)

// String implements fmt.Stringer for debug output.
func (k Kind) String() string {
	switch k {
	case Line:
		return "Line"
	case ArcCCW:
		return "ArcCCW"
	case ArcCW:
		return "ArcCW"
	default:
		return "Kind(?)"
	}
}

// ReadbackType returns the {-1, 0, +1} type code from spec.md §6's result
// readback contract: 0 for a line, +1 for a counter-clockwise arc, -1 for a
// clockwise arc.
func (k Kind) ReadbackType() int {
	switch k {
	case ArcCCW:
		return 1
	case ArcCW:
		return -1
	default:
		return 0
	}
}

// Vertex is a tagged record describing one span's arrival point, per
// spec.md §3. The first vertex of a curve is always Kind=Line with
// End equal to the curve's start point; Center is unused (zero) for line
// vertices. UserTag is a free integer label — the zig-zag generator uses it
// to mark band-boundary vertices it synthesizes (see pocket/zigzag.go).
type Vertex struct {
	Kind    Kind
	End     geom.Point
	Center  geom.Point
	UserTag int
}

// NewLineVertex builds a Kind=Line vertex ending at end.
func NewLineVertex(end geom.Point) Vertex {
	return Vertex{Kind: Line, End: end}
}

// NewArcVertex builds an arc vertex ending at end, centered at center,
// traveling counter-clockwise if ccw else clockwise.
func NewArcVertex(end, center geom.Point, ccw bool) Vertex {
	k := ArcCW
	if ccw {
		k = ArcCCW
	}
	return Vertex{Kind: k, End: end, Center: center}
}

// IsArc reports whether v describes an arc span.
func (v Vertex) IsArc() bool {
	return v.Kind == ArcCCW || v.Kind == ArcCW
}

// CCW reports whether an arc vertex travels counter-clockwise. Meaningless
// for line vertices.
func (v Vertex) CCW() bool {
	return v.Kind == ArcCCW
}
