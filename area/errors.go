package area

import "errors"

var (
	// ErrEmptyArea indicates an operation that requires at least one curve
	// was given an Area with none.
	ErrEmptyArea = errors.New("area: area has no curves")

	// ErrInvalidAccuracy indicates a non-positive accuracy value was
	// supplied (spec.md §7 InvalidParameters: "accuracy <= 0").
	ErrInvalidAccuracy = errors.New("area: accuracy must be positive")
)
