package area

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderIsIdempotent(t *testing.T) {
	outer := circleCurve(50, 50, 40, 0.01, false) // arbitrary input winding
	island := circleCurve(50, 50, 12, 0.01, false)
	a := newTestArea(t, 0.01, outer, island)

	require.NoError(t, a.Reorder())
	first := summarize(a)

	require.NoError(t, a.Reorder())
	second := summarize(a)

	assert.Equal(t, first, second)
}

func TestReorderNormalizesOrientation(t *testing.T) {
	// Both curves supplied with identical (arbitrary) winding; Reorder must
	// still produce an Area-convention outer (CCW) and island (CW).
	outer := circleCurve(50, 50, 40, 0.01, false)
	island := circleCurve(50, 50, 12, 0.01, false)
	a := newTestArea(t, 0.01, outer, island)

	require.NoError(t, a.Reorder())
	require.Len(t, a.Curves, 2)

	var sawOuter, sawIsland bool
	for _, c := range a.Curves {
		if c.IsClockwise() {
			sawIsland = true
		} else {
			sawOuter = true
		}
	}
	assert.True(t, sawOuter)
	assert.True(t, sawIsland)
}

func TestSplitSeparatesDisjointOuters(t *testing.T) {
	a := newTestArea(t, 0.01,
		squareCurve(0, 0, 10, 0.01),
		squareCurve(100, 100, 10, 0.01),
	)

	parts, err := a.Split()
	require.NoError(t, err)
	assert.Len(t, parts, 2)
	for _, p := range parts {
		assert.Len(t, p.Curves, 1)
	}
}

func TestSplitAttachesIslandToItsOuter(t *testing.T) {
	outer := circleCurve(50, 50, 40, 0.01, false)
	island := circleCurve(50, 50, 12, 0.01, false)
	a := newTestArea(t, 0.01, outer, island)

	parts, err := a.Split()
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Len(t, parts[0].Curves, 2)
}

func summarize(a *Area) []float64 {
	out := make([]float64, len(a.Curves))
	for i, c := range a.Curves {
		out[i] = c.SignedArea()
	}
	return out
}
