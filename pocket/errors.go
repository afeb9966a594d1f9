package pocket

import "errors"

var (
	// ErrInvalidToolRadius indicates tool_radius <= 0 (spec.md §7
	// InvalidParameters).
	ErrInvalidToolRadius = errors.New("pocket: tool radius must be positive")

	// ErrInvalidStepover indicates stepover <= 0 or stepover >=
	// 2*tool_radius (spec.md §7/§9: tightened coverage-preserving bound).
	ErrInvalidStepover = errors.New("pocket: stepover must be in (0, 2*tool_radius)")

	// ErrInvalidAccuracy indicates a non-positive accuracy was supplied.
	ErrInvalidAccuracy = errors.New("pocket: accuracy must be positive")

	// ErrAborted indicates ProcessingContext.RequestAbort was observed mid-
	// operation; callers receive whatever curves were emitted so far
	// alongside this error (spec.md §7 Aborted).
	ErrAborted = errors.New("pocket: processing aborted")
)
