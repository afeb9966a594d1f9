package area

import "github.com/elhernes/libarea/clipper"

// Union replaces a's curves with the union of a and other (spec.md §4.3,
// §6 union(other)). Raw Booleans do not Reorder — callers that need the
// canonical nested form call Reorder explicitly afterward.
func (a *Area) Union(other *Area) error {
	return a.booleanOp(clipper.Union, other)
}

// Intersect replaces a's curves with the intersection of a and other.
func (a *Area) Intersect(other *Area) error {
	return a.booleanOp(clipper.Intersection, other)
}

// Subtract replaces a's curves with a minus other (spec.md §6
// difference(other)).
func (a *Area) Subtract(other *Area) error {
	return a.booleanOp(clipper.Difference, other)
}

// Xor replaces a's curves with the symmetric difference of a and other
// (spec.md §6 symmetric_difference(other)).
func (a *Area) Xor(other *Area) error {
	return a.booleanOp(clipper.Xor, other)
}

func (a *Area) booleanOp(op clipper.ClipType, other *Area) error {
	subjects := toPaths64(a.Curves)
	var clips clipper.Paths64
	if other != nil {
		clips = toPaths64(other.Curves)
	}
	solution, _, err := clipper.BooleanOp64(op, clipper.NonZero, subjects, nil, clips)
	if err != nil {
		return err
	}
	a.Curves = fromPaths64(solution, a.Accuracy, a.FitArcs)
	return nil
}
