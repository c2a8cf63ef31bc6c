package iso

import "math"

// RawInput is one tick of unfiltered device state.
type RawInput struct {
	Horizontal float64
	Vertical   float64

	Jump     bool
	Interact bool
	Attack   bool
	Sprint   bool
	Utility  bool
}

// InputFilter smooths axis input and turns held buttons into press edges.
type InputFilter struct {
	MapToCircular     bool
	ForwardFilter     float64
	TurnFilter        float64
	ForwardSpeedLimit float64

	Vertical   float64
	Horizontal float64

	JumpPressed     bool
	InteractPressed bool
	AttackPressed   bool
	UtilityPressed  bool
	SprintHeld      bool

	prev RawInput
}

// NewInputFilter returns a filter with the default tuning.
func NewInputFilter() *InputFilter {
	return &InputFilter{
		MapToCircular:     true,
		ForwardFilter:     5,
		TurnFilter:        5,
		ForwardSpeedLimit: 1,
	}
}

// Update folds one tick of raw input into the filtered values.
func (f *InputFilter) Update(raw RawInput, dt float64) {
	h, v := raw.Horizontal, raw.Vertical
	if f.MapToCircular {
		h, v = SquareToCircle(h, v)
	}

	f.Vertical = clamp(lerp(f.Vertical, v, dt*f.ForwardFilter), -f.ForwardSpeedLimit, f.ForwardSpeedLimit)
	f.Horizontal = lerp(f.Horizontal, h, dt*f.TurnFilter)

	f.JumpPressed = raw.Jump && !f.prev.Jump
	f.InteractPressed = raw.Interact && !f.prev.Interact
	f.AttackPressed = raw.Attack && !f.prev.Attack
	f.UtilityPressed = raw.Utility && !f.prev.Utility
	f.SprintHeld = raw.Sprint
	f.prev = raw
}

// SquareToCircle maps the unit square onto the unit disc so diagonals are
// not faster than straight input.
func SquareToCircle(h, v float64) (float64, float64) {
	return h * math.Sqrt(1-0.5*v*v), v * math.Sqrt(1-0.5*h*h)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*clamp(t, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
