package pocket

import (
	"math"

	"github.com/elhernes/libarea/area"
	"github.com/elhernes/libarea/curve"
	"github.com/elhernes/libarea/geom"
)

// zigZagState carries the per-invocation rotation and direction bookkeeping
// the zig-zag generator needs, eliminating the original's process-wide
// ZigZagState globals (spec.md §9 "Zig-zag shared scratch state").
type zigZagState struct {
	stepover  float64
	accuracy  float64
	rightward bool
	cos, sin  float64 // rotate by -zig_angle
	cosI, sinI float64 // unrotate by +zig_angle
}

type zigZagPair struct {
	zig *curve.Curve
	zag *curve.Curve
}

// runZigZag produces the rows of one sub-area's zig-zag fill, already
// chained into continuous curves (spec.md §4.6; original_source/src/Area.cpp
// zigzag/make_zig/make_zig_curve/reorder_zigs).
func runZigZag(a *area.Area, params Params, ctx *ProcessingContext) ([]*curve.Curve, error) {
	if a.IsEmpty() {
		return nil, nil
	}

	angle := params.ZigAngleDegrees * math.Pi / 180
	zz := &zigZagState{
		stepover:  params.Stepover,
		accuracy:  a.Accuracy,
		rightward: true,
		cos:       math.Cos(-angle),
		sin:       math.Sin(-angle),
		cosI:      math.Cos(angle),
		sinI:      math.Sin(angle),
	}

	rotated, err := rotateAndFlatten(a, zz)
	if err != nil {
		return nil, err
	}

	box := rotated.BoundingBox()
	x0 := box.Min.X - 1
	x1 := box.Max.X + 1
	height := box.Max.Y - box.Min.Y
	numSteps := int(height/zz.stepover + 1)
	y := box.Min.Y

	var pairs []zigZagPair
	for i := 0; i < numSteps; i++ {
		if err := ctx.checkAbort(); err != nil {
			return nil, err
		}
		y0 := y
		y += zz.stepover

		band, err := rectangleArea(x0, x1, y0, y, rotated.Accuracy)
		if err != nil {
			return nil, err
		}
		if err := band.Intersect(rotated); err != nil {
			return nil, err
		}
		for _, c := range band.Curves {
			if pair, ok := makeZigCurve(c, y0, y, zz); ok {
				pairs = append(pairs, pair)
			}
		}
		zz.rightward = !zz.rightward
		ctx.tickWorklist()
	}

	return reorderZigs(pairs, zz.accuracy), nil
}

// rotateAndFlatten rotates every curve of a by -zig_angle and replaces arcs
// with their flattened chords, so every later band test is line-vs-line
// only (spec.md §9 "arc edges ... flattened to chords before zig/zag
// extraction").
func rotateAndFlatten(a *area.Area, zz *zigZagState) (*area.Area, error) {
	out, err := area.NewArea(a.Accuracy)
	if err != nil {
		return nil, err
	}
	for _, c := range a.Curves {
		pts := c.FlattenArcs()
		if len(pts) == 0 {
			continue
		}
		rp := make([]geom.Point, len(pts))
		for i, p := range pts {
			rp[i] = rotatePoint(p, zz.cos, zz.sin)
		}
		out.AddCurve(lineCurveFromPoints(rp, a.Accuracy))
	}
	return out, nil
}

func rotatePoint(p geom.Point, cosA, sinA float64) geom.Point {
	return geom.Point{X: p.X*cosA - p.Y*sinA, Y: p.X*sinA + p.Y*cosA}
}

func lineCurveFromPoints(pts []geom.Point, accuracy float64) *curve.Curve {
	c := curve.NewCurve(pts[0], accuracy)
	for _, p := range pts[1:] {
		c.AddLineVertex(p)
	}
	return c
}

func rectangleArea(x0, x1, y0, y1, accuracy float64) (*area.Area, error) {
	a, err := area.NewArea(accuracy)
	if err != nil {
		return nil, err
	}
	c := curve.NewCurve(geom.Point{X: x0, Y: y0}, accuracy)
	c.AddLineVertex(geom.Point{X: x0, Y: y1})
	c.AddLineVertex(geom.Point{X: x1, Y: y1})
	c.AddLineVertex(geom.Point{X: x1, Y: y0})
	c.AddLineVertex(geom.Point{X: x0, Y: y0})
	a.AddCurve(c)
	return a, nil
}

type yAnchor struct {
	point geom.Point
	index int
	found bool
}

func testYPoint(idx int, p geom.Point, a *yAnchor, y, accuracy float64, leftNotRight bool) {
	if math.Abs(p.Y-y) >= 2*accuracy {
		return
	}
	if !a.found {
		a.point, a.index, a.found = p, idx, true
		return
	}
	if leftNotRight {
		if p.X < a.point.X {
			a.point, a.index = p, idx
		}
	} else {
		if p.X > a.point.X {
			a.point, a.index = p, idx
		}
	}
}

// makeZigCurve extracts the zig (cutting pass) and zag (transition) from
// one filled piece of a band, already unrotated back to model space
// (original_source/src/Area.cpp make_zig_curve).
func makeZigCurve(piece *curve.Curve, y0, y1 float64, zz *zigZagState) (zigZagPair, bool) {
	c := piece
	if zz.rightward {
		if c.IsClockwise() {
			c = c.Reverse()
		}
	} else if !c.IsClockwise() {
		c = c.Reverse()
	}

	n := len(c.Vertices)
	if n == 0 {
		return zigZagPair{}, false
	}

	var topLeft, topRight, bottomLeft yAnchor
	for i, v := range c.Vertices {
		testYPoint(i, v.End, &topRight, y1, zz.accuracy, !zz.rightward)
		testYPoint(i, v.End, &topLeft, y1, zz.accuracy, zz.rightward)
		testYPoint(i, v.End, &bottomLeft, y0, zz.accuracy, zz.rightward)
	}

	startIndex := 0
	if bottomLeft.found {
		startIndex = bottomLeft.index
	} else if topLeft.found {
		startIndex = topLeft.index
	}

	var endIndex, zagEndIndex int
	if topRight.found {
		endIndex = topRight.index
		zagEndIndex = topLeft.index
	} else {
		endIndex = bottomLeft.index
		zagEndIndex = bottomLeft.index
	}
	if endIndex <= startIndex {
		endIndex += n - 1
	}
	if zagEndIndex <= startIndex {
		zagEndIndex += n - 1
	}

	// Traverse the curve's vertex list twice (skipping the duplicate
	// first vertex of the second pass) so wrap-around start/end indices
	// resolve without modular arithmetic.
	virtual := make([]geom.Point, 0, 2*n-1)
	for _, v := range c.Vertices {
		virtual = append(virtual, v.End)
	}
	for _, v := range c.Vertices[1:] {
		virtual = append(virtual, v.End)
	}

	var zigPts, zagPts []geom.Point
	zigStarted, zigFinished := false, false
	for vIndex, p := range virtual {
		up := unrotatePoint(p, zz)
		switch {
		case zigFinished:
			zagPts = append(zagPts, up)
			if vIndex == zagEndIndex {
				goto done
			}
		case zigStarted:
			zigPts = append(zigPts, up)
			if vIndex == endIndex {
				zigFinished = true
				if vIndex == zagEndIndex {
					goto done
				}
				zagPts = append(zagPts, up)
			}
		default:
			if vIndex == startIndex {
				zigPts = append(zigPts, up)
				zigStarted = true
			}
		}
	}
done:
	if !zigFinished {
		return zigZagPair{}, false
	}

	pair := zigZagPair{zig: lineCurveFromPoints(zigPts, zz.accuracy)}
	if len(zagPts) > 0 {
		pair.zag = lineCurveFromPoints(zagPts, zz.accuracy)
	}
	return pair, true
}

func unrotatePoint(p geom.Point, zz *zigZagState) geom.Point {
	return geom.Point{X: p.X*zz.cosI - p.Y*zz.sinI, Y: p.X*zz.sinI + p.Y*zz.cosI}
}

// reorderZigs chains zig-zag pairs into continuous curves (spec.md §4.6
// steps 5-6; original_source/src/Area.cpp add_reorder_zig/reorder_zigs).
func reorderZigs(pairs []zigZagPair, accuracy float64) []*curve.Curve {
	var chains [][]zigZagPair

	for _, pair := range pairs {
		if pair.zag != nil && len(pair.zag.Vertices) > 1 {
			zagStart := pair.zag.Vertices[0].End
			removed := false
			for _, chain := range chains {
				if removed {
					break
				}
				for _, z := range chain {
					if removed {
						break
					}
					for _, v := range z.zig.Vertices {
						if math.Abs(zagStart.X-v.End.X) < 2*accuracy && math.Abs(zagStart.Y-v.End.Y) < 2*accuracy {
							pair.zag = nil
							removed = true
							break
						}
					}
				}
			}
		}

		zigStart := pair.zig.Vertices[0].End
		joined := false
		for i, chain := range chains {
			last := chain[len(chain)-1]
			e := last.zig.Vertices[len(last.zig.Vertices)-1].End
			if math.Abs(zigStart.X-e.X) < 2*accuracy && math.Abs(zigStart.Y-e.Y) < 2*accuracy {
				chains[i] = append(chain, pair)
				joined = true
				break
			}
		}
		if !joined {
			chains = append(chains, []zigZagPair{pair})
		}
	}

	var out []*curve.Curve
	for _, chain := range chains {
		if len(chain) == 0 {
			continue
		}
		var vertices []curve.Vertex
		for i, pair := range chain {
			for vi, v := range pair.zig.Vertices {
				if vi == 0 && i != 0 {
					continue
				}
				vertices = append(vertices, v)
			}
			if i == len(chain)-1 && pair.zag != nil {
				for vi, v := range pair.zag.Vertices {
					if vi == 0 {
						continue
					}
					vertices = append(vertices, v)
				}
			}
		}
		out = append(out, &curve.Curve{Vertices: vertices, Accuracy: accuracy})
	}
	return out
}
