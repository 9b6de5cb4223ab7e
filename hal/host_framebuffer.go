//go:build !tinygo

package hal

import "sync"

// hostFramebuffer keeps the surface the program draws into (back) apart from
// the one the window reads (front). Present copies back to front.
type hostFramebuffer struct {
	width  int
	height int
	back   []uint16

	mu    sync.Mutex
	front []uint16
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		back:   make([]uint16, width*height),
		front:  make([]uint16, width*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatBGR555 }
func (f *hostFramebuffer) Pixels() []uint16    { return f.back }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	fillPixels(f.back, PackRGB(PixelFormatBGR555, r, g, b))
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	return nil
}

func (f *hostFramebuffer) snapshot(dst []uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}
