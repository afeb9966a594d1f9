package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elhernes/libarea/geom"
)

func square(side float64) *Curve {
	c := NewCurve(geom.Pt(0, 0), 0.01)
	c.AddLineVertex(geom.Pt(side, 0))
	c.AddLineVertex(geom.Pt(side, side))
	c.AddLineVertex(geom.Pt(0, side))
	c.AddLineVertex(geom.Pt(0, 0))
	return c
}

func TestSquareIsClosed(t *testing.T) {
	c := square(10)
	assert.True(t, c.IsClosed(1e-9))
}

func TestSquareAreaMagnitude(t *testing.T) {
	c := square(10)
	assert.InDelta(t, 100, math.Abs(c.SignedArea()), 1e-9)
}

func TestReverseFlipsAreaSign(t *testing.T) {
	c := square(10)
	area := c.SignedArea()
	rev := c.Reverse()
	assert.InDelta(t, -area, rev.SignedArea(), 1e-9)
	assert.InDelta(t, math.Abs(area), math.Abs(rev.SignedArea()), 1e-9)
}

func TestPerimeter(t *testing.T) {
	c := square(10)
	assert.InDelta(t, 40, c.Perimeter(), 1e-9)
}

func TestCircleArea(t *testing.T) {
	center := geom.Pt(0, 0)
	r := 10.0
	c := NewCurve(geom.Pt(r, 0), 0.001)
	require.NoError(t, c.AddArcVertex(geom.Pt(-r, 0), center, true))
	require.NoError(t, c.AddArcVertex(geom.Pt(r, 0), center, true))
	assert.InDelta(t, math.Pi*r*r, math.Abs(c.SignedArea()), 1e-3)
}

func TestNearestPointOnSquareEdge(t *testing.T) {
	c := square(10)
	pt, idx, t2 := c.NearestPoint(geom.Pt(5, -3))
	assert.InDelta(t, 5, pt.X, 1e-9)
	assert.InDelta(t, 0, pt.Y, 1e-9)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 0.5, t2, 1e-9)
}

func TestFlattenArcsStartsAtCurveStart(t *testing.T) {
	c := square(10)
	pts := c.FlattenArcs()
	require.NotEmpty(t, pts)
	assert.Equal(t, c.Start(), pts[0])
	assert.Equal(t, 5, len(pts)) // start + 4 line vertices
}

func TestChangeStartPreservesClosedShape(t *testing.T) {
	c := square(10)
	original := c.Perimeter()
	rotated, err := c.ChangeStart(2)
	require.NoError(t, err)
	assert.True(t, rotated.IsClosed(1e-9))
	assert.InDelta(t, original, rotated.Perimeter(), 1e-9)
}

func TestIntersectionsOfCrossingSquares(t *testing.T) {
	a := square(10)
	b := NewCurve(geom.Pt(5, 5), 0.01)
	b.AddLineVertex(geom.Pt(15, 5))
	b.AddLineVertex(geom.Pt(15, 15))
	b.AddLineVertex(geom.Pt(5, 15))
	b.AddLineVertex(geom.Pt(5, 5))
	pts := a.Intersections(b, 1e-9)
	assert.Len(t, pts, 2)
}

func TestFitArcsRoundTripOnFlattenedCircle(t *testing.T) {
	center := geom.Pt(0, 0)
	r := 10.0
	original := NewCurve(geom.Pt(r, 0), 0.01)
	require.NoError(t, original.AddArcVertex(geom.Pt(-r, 0), center, true))
	require.NoError(t, original.AddArcVertex(geom.Pt(r, 0), center, true))

	flatPts := original.FlattenArcs()
	flat := &Curve{Accuracy: 0.01}
	flat.Vertices = append(flat.Vertices, NewLineVertex(flatPts[0]))
	for _, p := range flatPts[1:] {
		flat.AddLineVertex(p)
	}

	refit := flat.FitArcs()
	var arcCount int
	for _, v := range refit.Vertices {
		if v.IsArc() {
			arcCount++
		}
	}
	assert.Greater(t, arcCount, 0)
}

func TestAddArcVertexRejectsZeroRadius(t *testing.T) {
	c := NewCurve(geom.Pt(0, 0), 0.01)
	err := c.AddArcVertex(geom.Pt(5, 0), geom.Pt(0, 0), true)
	assert.ErrorIs(t, err, ErrDegenerateArc)
}

func TestAddArcVertexRejectsRadiusMismatch(t *testing.T) {
	c := NewCurve(geom.Pt(10, 0), 0.01)
	err := c.AddArcVertex(geom.Pt(0, 20), geom.Pt(0, 0), true)
	assert.ErrorIs(t, err, ErrArcRadiusMismatch)
}

func TestAddArcVertexAcceptsMatchingRadius(t *testing.T) {
	c := NewCurve(geom.Pt(10, 0), 0.01)
	err := c.AddArcVertex(geom.Pt(-10, 0), geom.Pt(0, 0), true)
	assert.NoError(t, err)
}
