package geom

import "math"

// Box is an axis-aligned bounding box. An empty Box has Min.X > Max.X.
type Box struct {
	Min, Max Point
}

// EmptyBox returns a Box with no extent, ready to be grown via Extend.
func EmptyBox() Box {
	return Box{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether b has never been extended.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Extend grows b to include p, returning the new box.
func (b Box) Extend(p Point) Box {
	return Box{
		Min: Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box{
		Min: Point{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Width returns the box's horizontal extent.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the box's vertical extent.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Overlaps reports whether b and o share any area, inclusive of touching
// edges.
func (b Box) Overlaps(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X && b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// InflatedBy returns b grown by d in every direction (negative d shrinks).
func (b Box) InflatedBy(d float64) Box {
	return Box{
		Min: Point{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}
