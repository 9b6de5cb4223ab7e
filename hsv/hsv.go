// Package hsv converts 5-bit HSV colors to 5-bit RGB using fixed-point
// integer arithmetic.
//
// All channels live in [0, Max]. Hue is split into six regions of six
// levels each; the last region holds only hues 30 and 31. Shifting right by
// five stands in for division by 32, so full intensity (31) scales to 30 in
// intermediate terms. That rounding is part of the observable output.
package hsv

// Max is the largest value of any 5-bit channel.
const Max = 31

// Levels is the number of representable values per channel.
const Levels = Max + 1

// Regions is the number of color wheel segments.
const Regions = 6

// Region returns the color wheel segment of hue h.
func Region(h uint8) uint8 {
	return clamp(h) / Regions
}

// Offset returns the position of hue h inside its segment, in [0, Regions).
func Offset(h uint8) uint8 {
	return clamp(h) % Regions
}

// ToRGB converts (h, s, v) to (r, g, b). Inputs above Max are clamped.
func ToRGB(h, s, v uint8) (r, g, b uint8) {
	h, s, v = clamp(h), clamp(s), clamp(v)
	if s == 0 {
		return v, v, v
	}

	f := uint(Offset(h)) * Regions
	vv := uint(v)
	ss := uint(s)

	p := uint8((vv * (Max - ss)) >> 5)
	q := uint8((vv * (Max - ((ss * f) >> 5))) >> 5)
	t := uint8((vv * (Max - ((ss * (Max - f)) >> 5))) >> 5)

	switch Region(h) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func clamp(c uint8) uint8 {
	if c > Max {
		return Max
	}
	return c
}
