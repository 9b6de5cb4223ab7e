package hal

// Pack5 packs 5-bit channels into the native pixel of format f.
//
// Channels above 31 are masked. Unknown formats pack as BGR555.
func Pack5(f PixelFormat, r, g, b uint8) uint16 {
	rr := uint16(r) & 0x1F
	gg := uint16(g) & 0x1F
	bb := uint16(b) & 0x1F
	switch f {
	case PixelFormatRGB565:
		// Widen green to 6 bits by replicating its top bit.
		g6 := gg<<1 | gg>>4
		return rr<<11 | g6<<5 | bb
	default:
		return rr | gg<<5 | bb<<10
	}
}

// Unpack5 splits a native pixel into 5-bit channels.
func Unpack5(f PixelFormat, p uint16) (r, g, b uint8) {
	switch f {
	case PixelFormatRGB565:
		return uint8(p>>11) & 0x1F, uint8(p>>6) & 0x1F, uint8(p) & 0x1F
	default:
		return uint8(p) & 0x1F, uint8(p>>5) & 0x1F, uint8(p>>10) & 0x1F
	}
}

// PackRGB packs 8-bit channels into the native pixel of format f.
func PackRGB(f PixelFormat, r, g, b uint8) uint16 {
	if f == PixelFormatRGB565 {
		return rgb565(r, g, b)
	}
	return Pack5(f, r>>3, g>>3, b>>3)
}

// RGB888 expands a native pixel to 8-bit channels.
func RGB888(f PixelFormat, p uint16) (r, g, b uint8) {
	if f == PixelFormatRGB565 {
		return rgb888From565(p)
	}
	r5, g5, b5 := Unpack5(f, p)
	return expand5(r5), expand5(g5), expand5(b5)
}

func expand5(c uint8) uint8 {
	return uint8((uint16(c) * 255) / 31)
}

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

func fillPixels(dst []uint16, p uint16) {
	for i := range dst {
		dst[i] = p
	}
}
