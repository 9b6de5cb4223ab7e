package gradient

import (
	"fmt"

	"huebar/hal"
	"huebar/hsv"
)

// Spans returns the pixel width of each hue level across a row of width
// pixels. Widths alternate between width/32+1 and width/32 starting with
// the wider one; the last span takes whatever is left, so the spans tile
// the row exactly.
func Spans(width int) [hsv.Levels]int {
	var spans [hsv.Levels]int
	if width <= 0 {
		return spans
	}
	base := width >> 5
	x := 0
	for i := range spans {
		n := base + ((i + 1) & 1)
		if i == len(spans)-1 || x+n > width {
			n = width - x
		}
		spans[i] = n
		x += n
	}
	return spans
}

// Renderer draws the hue gradient into a framebuffer it owns.
type Renderer struct {
	fb     hal.Framebuffer
	format hal.PixelFormat
	width  int
	height int
	spans  [hsv.Levels]int
}

// NewRenderer returns a renderer for fb.
func NewRenderer(fb hal.Framebuffer) (*Renderer, error) {
	if fb == nil {
		return nil, hal.ErrNoFramebuffer
	}
	w, h := fb.Width(), fb.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", w, h)
	}
	if n := len(fb.Pixels()); n < w*h {
		return nil, fmt.Errorf("framebuffer holds %d pixels, need %d", n, w*h)
	}
	return &Renderer{
		fb:     fb,
		format: fb.Format(),
		width:  w,
		height: h,
		spans:  Spans(w),
	}, nil
}

// RenderRow fills row 0 with one span per hue level for st.
func (r *Renderer) RenderRow(st State) {
	row := r.fb.Pixels()[:r.width]
	sat, val := st.HSV()

	x := 0
	for h, n := range r.spans {
		red, green, blue := hsv.ToRGB(uint8(h), sat, val)
		p := hal.Pack5(r.format, red, green, blue)
		span := row[x : x+n]
		for i := range span {
			span[i] = p
		}
		x += n
	}
}

// Replicate copies row 0 over every other row.
func (r *Renderer) Replicate() {
	pix := r.fb.Pixels()
	row := pix[:r.width]
	for y := 1; y < r.height; y++ {
		off := y * r.width
		copy(pix[off:off+r.width], row)
	}
}

// Render draws a full frame for st.
func (r *Renderer) Render(st State) {
	r.RenderRow(st)
	r.Replicate()
}
