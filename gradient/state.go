package gradient

import (
	"huebar/hal"
	"huebar/hsv"
)

// State is the user-adjustable part of the gradient. Both fields stay in
// [0, hsv.Max].
//
// The renderer inverts both before conversion: raising Saturation washes
// the colors out and raising Value darkens them.
type State struct {
	Saturation uint8
	Value      uint8
}

// Apply performs at most one transition for the held buttons, checked in
// the order up, down, left, right. A button whose transition would leave
// the range does not match, so the next held button gets its turn.
// It reports whether the state changed.
func (s *State) Apply(held hal.ButtonMask) bool {
	switch {
	case held.Has(hal.ButtonUp) && s.Saturation < hsv.Max:
		s.Saturation++
	case held.Has(hal.ButtonDown) && s.Saturation > 0:
		s.Saturation--
	case held.Has(hal.ButtonLeft) && s.Value > 0:
		s.Value--
	case held.Has(hal.ButtonRight) && s.Value < hsv.Max:
		s.Value++
	default:
		return false
	}
	return true
}

// HSV returns the saturation and value handed to the converter.
func (s State) HSV() (sat, val uint8) {
	return hsv.Max - s.Saturation, hsv.Max - s.Value
}
