package area

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetInwardShrinksSquare(t *testing.T) {
	a := newTestArea(t, 0.001, squareCurve(0, 0, 20, 0.001))

	require.NoError(t, a.Offset(3)) // positive => inward
	require.NotEmpty(t, a.Curves)

	b := a.BoundingBox()
	assert.InDelta(t, 14, b.Width(), 0.5) // 20 - 2*3
}

func TestOffsetOutwardGrowsSquare(t *testing.T) {
	a := newTestArea(t, 0.001, squareCurve(0, 0, 20, 0.001))

	require.NoError(t, a.Offset(-3)) // negative => outward
	require.NotEmpty(t, a.Curves)

	b := a.BoundingBox()
	assert.InDelta(t, 26, b.Width(), 0.5) // 20 + 2*3
}

func TestOffsetRoundTrip(t *testing.T) {
	a := newTestArea(t, 0.001, squareCurve(0, 0, 20, 0.001))

	require.NoError(t, a.Offset(3))
	require.NoError(t, a.Offset(-3))

	b := a.BoundingBox()
	assert.InDelta(t, 20, b.Width(), 0.5)
	assert.InDelta(t, 20, b.Height(), 0.5)
}

func TestOffsetTooLargeEmptiesArea(t *testing.T) {
	a := newTestArea(t, 0.001, squareCurve(0, 0, 2, 0.001))

	require.NoError(t, a.Offset(10)) // larger than the inscribed circle
	assert.True(t, a.IsEmpty())
}

func TestThickenClosedSquareWidensByDiameter(t *testing.T) {
	a, err := NewArea(0.01)
	require.NoError(t, err)
	line := squareCurve(0, 0, 10, 0.01) // any closed curve works as the swept path
	a.AddCurve(line)

	require.NoError(t, a.Thicken(1))
	require.NotEmpty(t, a.Curves)

	b := a.BoundingBox()
	assert.InDelta(t, 12, b.Width(), 0.5) // 10 + 2*1
}

func TestThickenRejectsEmptyArea(t *testing.T) {
	a, err := NewArea(0.01)
	require.NoError(t, err)

	assert.ErrorIs(t, a.Thicken(1), ErrEmptyArea)
}
