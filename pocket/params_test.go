package pocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParamsRejectsNonPositiveToolRadius(t *testing.T) {
	_, err := NewParams(0, 0, 1, false, Spiral, 0)
	assert.ErrorIs(t, err, ErrInvalidToolRadius)
}

func TestNewParamsRejectsStepoverOutOfRange(t *testing.T) {
	_, err := NewParams(2, 0, 0, false, Spiral, 0)
	assert.ErrorIs(t, err, ErrInvalidStepover)

	_, err = NewParams(2, 0, 4, false, Spiral, 0)
	assert.ErrorIs(t, err, ErrInvalidStepover)
}

func TestNewParamsStartOffset(t *testing.T) {
	p, err := NewParams(2, 0.5, 1, false, Spiral, 0)
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, p.StartOffset(), 1e-9)
}

func TestProcessingContextAbort(t *testing.T) {
	ctx := NewProcessingContext()
	assert.False(t, ctx.Aborted())
	ctx.RequestAbort()
	assert.True(t, ctx.Aborted())
}

func TestProcessingContextProgressMonotonic(t *testing.T) {
	ctx := NewProcessingContext()
	ctx.setProgress(40)
	ctx.setProgress(10)
	assert.InDelta(t, 40, ctx.ProcessingDone(), 1e-9)
	ctx.setProgress(200)
	assert.InDelta(t, 100, ctx.ProcessingDone(), 1e-9)
}
