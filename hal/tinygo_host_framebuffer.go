//go:build tinygo && !gameboyadvance

package hal

type tinyGoHostFramebuffer struct {
	w   int
	h   int
	pix []uint16
}

func newTinyGoHostFramebuffer(w, h int) *tinyGoHostFramebuffer {
	return &tinyGoHostFramebuffer{
		w:   w,
		h:   h,
		pix: make([]uint16, w*h),
	}
}

func (f *tinyGoHostFramebuffer) Width() int          { return f.w }
func (f *tinyGoHostFramebuffer) Height() int         { return f.h }
func (f *tinyGoHostFramebuffer) Format() PixelFormat { return PixelFormatBGR555 }
func (f *tinyGoHostFramebuffer) Pixels() []uint16    { return f.pix }

func (f *tinyGoHostFramebuffer) ClearRGB(r, g, b uint8) {
	fillPixels(f.pix, PackRGB(PixelFormatBGR555, r, g, b))
}

func (f *tinyGoHostFramebuffer) Present() error {
	// No-op by default for tinygo host targets.
	return nil
}
