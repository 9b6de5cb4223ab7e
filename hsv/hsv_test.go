package hsv

import "testing"

// Division tables as shipped on hardware without a divider.
var (
	regionTable = [Levels]uint8{
		0, 0, 0, 0, 0, 0, 1, 1,
		1, 1, 1, 1, 2, 2, 2, 2,
		2, 2, 3, 3, 3, 3, 3, 3,
		4, 4, 4, 4, 4, 4, 5, 5,
	}
	offsetTable = [Levels]uint8{
		0, 1, 2, 3, 4, 5, 0, 1,
		2, 3, 4, 5, 0, 1, 2, 3,
		4, 5, 0, 1, 2, 3, 4, 5,
		0, 1, 2, 3, 4, 5, 0, 1,
	}
)

func TestRegionOffsetMatchTables(t *testing.T) {
	for h := uint8(0); h < Levels; h++ {
		if got := Region(h); got != regionTable[h] {
			t.Fatalf("Region(%d) = %d, want %d", h, got, regionTable[h])
		}
		if got := Offset(h); got != offsetTable[h] {
			t.Fatalf("Offset(%d) = %d, want %d", h, got, offsetTable[h])
		}
	}
}

func TestToRGBDomainClosure(t *testing.T) {
	for h := 0; h < Levels; h++ {
		for s := 0; s < Levels; s++ {
			for v := 0; v < Levels; v++ {
				r, g, b := ToRGB(uint8(h), uint8(s), uint8(v))
				if r > Max || g > Max || b > Max {
					t.Fatalf("ToRGB(%d, %d, %d) = (%d, %d, %d) out of range", h, s, v, r, g, b)
				}
			}
		}
	}
}

func TestToRGBAchromatic(t *testing.T) {
	for h := uint8(0); h < Levels; h++ {
		for v := uint8(0); v < Levels; v++ {
			r, g, b := ToRGB(h, 0, v)
			if r != v || g != v || b != v {
				t.Fatalf("ToRGB(%d, 0, %d) = (%d, %d, %d), want gray %d", h, v, r, g, b, v)
			}
		}
	}
}

func TestToRGBFullSaturation(t *testing.T) {
	tests := []struct {
		h       uint8
		r, g, b uint8
	}{
		{h: 0, r: 31, g: 0, b: 0},
		{h: 5, r: 31, g: 30, b: 0},
		{h: 6, r: 30, g: 31, b: 0},
		{h: 11, r: 1, g: 31, b: 0},
		{h: 12, r: 0, g: 31, b: 0},
		{h: 16, r: 0, g: 31, b: 24},
		{h: 18, r: 0, g: 30, b: 31},
		{h: 21, r: 0, g: 13, b: 31},
		{h: 24, r: 0, g: 0, b: 31},
		{h: 27, r: 18, g: 0, b: 31},
		{h: 30, r: 31, g: 0, b: 30},
		{h: 31, r: 31, g: 0, b: 25},
	}
	for _, tt := range tests {
		r, g, b := ToRGB(tt.h, Max, Max)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("ToRGB(%d, 31, 31) = (%d, %d, %d), want (%d, %d, %d)", tt.h, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestToRGBBlack(t *testing.T) {
	for h := uint8(0); h < Levels; h++ {
		for s := uint8(0); s < Levels; s++ {
			if r, g, b := ToRGB(h, s, 0); r != 0 || g != 0 || b != 0 {
				t.Fatalf("ToRGB(%d, %d, 0) = (%d, %d, %d), want black", h, s, r, g, b)
			}
		}
	}
}

func TestToRGBClampsInputs(t *testing.T) {
	r, g, b := ToRGB(200, 40, 255)
	wr, wg, wb := ToRGB(Max, Max, Max)
	if r != wr || g != wg || b != wb {
		t.Fatalf("ToRGB(200, 40, 255) = (%d, %d, %d), want (%d, %d, %d)", r, g, b, wr, wg, wb)
	}
}
