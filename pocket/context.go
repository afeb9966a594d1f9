package pocket

// ProcessingContext threads per-call progress reporting and cooperative
// cancellation through the generators, replacing the original's
// process-wide scalars with an explicit object (spec.md §5, §9 "Progress
// reporting and abort"). None of its fields are shared across calls; a
// caller runs one generator per context.
type ProcessingContext struct {
	// FitArcs re-detects arcs in emitted polylines (spec.md §9 also allows
	// this toggle to live on area.Area; pocket consults whichever is set
	// for its own internal curve construction).
	FitArcs bool

	processingDone             float64
	singleAreaProcessingLength float64
	splitProcessingLength      float64
	afterMakeOffsetsLength     float64
	makeOffsetsIncrement       float64
	pleaseAbort                bool
}

// NewProcessingContext returns a zeroed ProcessingContext ready for one
// call.
func NewProcessingContext() *ProcessingContext {
	return &ProcessingContext{}
}

// RequestAbort sets the cooperative abort flag. Safe to call from outside
// the generator's own goroutine only if the caller provides its own
// synchronization; the core itself is single-threaded per spec.md §5.
func (c *ProcessingContext) RequestAbort() {
	c.pleaseAbort = true
}

// Aborted reports whether RequestAbort has been called.
func (c *ProcessingContext) Aborted() bool {
	return c.pleaseAbort
}

// checkAbort returns ErrAborted if the abort flag is set. Call at the
// start of every outer loop body (spec.md §5: "polled at the beginning of
// each outer loop body").
func (c *ProcessingContext) checkAbort() error {
	if c.pleaseAbort {
		return ErrAborted
	}
	return nil
}

// ProcessingDone returns the current progress counter in [0, 100].
func (c *ProcessingContext) ProcessingDone() float64 {
	return c.processingDone
}

// setProgress writes the progress counter, clamped to [0, 100] and
// monotonic non-decreasing within a single call (spec.md §5).
func (c *ProcessingContext) setProgress(v float64) {
	if v < c.processingDone {
		return
	}
	if v > 100 {
		v = 100
	}
	c.processingDone = v
}

// initLengths sets up the progress-accounting budget for one
// SplitAndMakePocketToolpath call: splitProcessingLength covers Split
// itself, the remainder is divided evenly across sub-areas.
func (c *ProcessingContext) initLengths(subAreaCount int) {
	c.splitProcessingLength = 5
	c.processingDone = 0
	if subAreaCount <= 0 {
		c.singleAreaProcessingLength = 95
		return
	}
	c.singleAreaProcessingLength = (100 - c.splitProcessingLength) / float64(subAreaCount)
}

// beginSubArea marks the start of processing one sub-area's worklist. The
// worklist may advance progress by at most 80% of the sub-area's budget;
// afterMakeOffsetsLength records the progress value at which that share
// runs out, leaving the rest for the flattening walk after MakeOffsets
// completes.
func (c *ProcessingContext) beginSubArea(expectedWorklistSteps int) {
	budget := c.singleAreaProcessingLength * 0.8
	c.afterMakeOffsetsLength = c.processingDone + budget
	if expectedWorklistSteps <= 0 {
		expectedWorklistSteps = 1
	}
	c.makeOffsetsIncrement = budget / float64(expectedWorklistSteps)
}

// tickWorklist advances progress by one worklist step.
func (c *ProcessingContext) tickWorklist() {
	c.setProgress(c.processingDone + c.makeOffsetsIncrement)
}

// finishSubArea rounds the progress counter up to the boundary of the
// current sub-area's budget (accounts for any worklist steps the estimate
// undercounted).
func (c *ProcessingContext) finishSubArea(base float64) {
	c.setProgress(base + c.singleAreaProcessingLength)
}
