package curve

import "errors"

var (
	// ErrDegenerateArc indicates an arc vertex whose end coincides with its
	// previous endpoint, or whose radius collapses to zero.
	ErrDegenerateArc = errors.New("curve: degenerate arc span")

	// ErrArcRadiusMismatch indicates an arc vertex whose start and end
	// points are not equidistant from its center within accuracy.
	ErrArcRadiusMismatch = errors.New("curve: arc start/end radii differ beyond accuracy")

	// ErrCurveNotClosed indicates an operation that requires a closed curve
	// (first vertex's end equals the last vertex's end) was given an open
	// one.
	ErrCurveNotClosed = errors.New("curve: curve is not closed")

	// ErrEmptyCurve indicates an operation that requires at least one
	// vertex was given none.
	ErrEmptyCurve = errors.New("curve: curve has no vertices")
)
