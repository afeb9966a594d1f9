// Package pocket implements the pocket-toolpath generator: mode dispatch
// over the spiral (CurveTree), zig-zag, single-offset, and combined
// strategies described in spec.md §4.5-§4.7.
package pocket

// Mode selects the pocket-toolpath fill strategy (spec.md §3
// CAreaPocketParams.mode).
type Mode int

const (
	// Spiral runs the recursive concentric-offset generator (spec.md
	// §4.5).
	Spiral Mode = iota
	// ZigZag runs the axis-aligned row generator (spec.md §4.6).
	ZigZag
	// SingleOffset emits only the inward-offset perimeter.
	SingleOffset
	// ZigZagThenSingleOffset runs ZigZag then appends the perimeter pass.
	ZigZagThenSingleOffset
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Spiral:
		return "Spiral"
	case ZigZag:
		return "ZigZag"
	case SingleOffset:
		return "SingleOffset"
	case ZigZagThenSingleOffset:
		return "ZigZagThenSingleOffset"
	default:
		return "Mode(?)"
	}
}

// Params is the renamed CAreaPocketParams of spec.md §3: the tool and
// stepover geometry plus the chosen fill mode. Construct via NewParams,
// which enforces the invariants of spec.md §3/§7.
type Params struct {
	ToolRadius      float64
	ExtraOffset     float64
	Stepover        float64
	FromCenter      bool
	Mode            Mode
	ZigAngleDegrees float64
}

// NewParams validates and returns a Params. Per spec.md §3: "stepover must
// be positive and strictly less than 2 x tool_radius"; per §9's tightened
// coverage-preserving rule this bound is enforced exactly (the original
// source permitted stepover > tool_diameter; the spec documents this
// relaxation is not carried forward).
func NewParams(toolRadius, extraOffset, stepover float64, fromCenter bool, mode Mode, zigAngleDegrees float64) (Params, error) {
	if toolRadius <= 0 {
		return Params{}, ErrInvalidToolRadius
	}
	if stepover <= 0 || stepover >= 2*toolRadius {
		return Params{}, ErrInvalidStepover
	}
	return Params{
		ToolRadius:      toolRadius,
		ExtraOffset:     extraOffset,
		Stepover:        stepover,
		FromCenter:      fromCenter,
		Mode:            mode,
		ZigAngleDegrees: zigAngleDegrees,
	}, nil
}

// StartOffset returns the inward offset applied before pocketing begins:
// tool_radius + extra_offset (spec.md §4.5 step 1, §4.7).
func (p Params) StartOffset() float64 {
	return p.ToolRadius + p.ExtraOffset
}
