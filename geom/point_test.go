package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, 4)

	assert.Equal(t, Pt(4, 6), p.Add(q))
	assert.Equal(t, Pt(-2, -2), p.Sub(q))
	assert.Equal(t, Pt(2, 4), p.Scale(2))
	assert.InDelta(t, 11, p.Dot(q), 1e-12)
	assert.InDelta(t, -2, p.Cross(q), 1e-12)
}

func TestPointLengthAndNormalize(t *testing.T) {
	p := Pt(3, 4)
	assert.InDelta(t, 5, p.Length(), 1e-12)

	n := p.Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-9)

	zero := Point{}.Normalize()
	assert.Equal(t, Point{}, zero)
}

func TestRightNormal(t *testing.T) {
	// Moving along +X, the right normal (90 deg clockwise) points along -Y.
	n := Pt(1, 0).RightNormal()
	assert.InDelta(t, 0, n.X, 1e-12)
	assert.InDelta(t, -1, n.Y, 1e-12)
}

func TestEqualWithinEpsilon(t *testing.T) {
	p := Pt(1, 1)
	q := Pt(1.0001, 1)
	require.False(t, p.Equal(q, 1e-6))
	require.True(t, p.Equal(q, 1e-3))
}

func TestRotateAbout(t *testing.T) {
	center := Pt(5, 5)
	p := Pt(6, 5)
	rotated := p.RotateAbout(center, math.Pi/2)
	assert.InDelta(t, 5, rotated.X, 1e-9)
	assert.InDelta(t, 6, rotated.Y, 1e-9)
}

func TestAngleTo(t *testing.T) {
	a := Pt(1, 0)
	b := Pt(0, 1)
	assert.InDelta(t, math.Pi/2, a.AngleTo(b), 1e-9)
	assert.InDelta(t, -math.Pi/2, b.AngleTo(a), 1e-9)
}
