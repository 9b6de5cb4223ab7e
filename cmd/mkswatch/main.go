// Command mkswatch renders gradient rows for a grid of saturation/value
// states into one image, or prints the 32 hue colors of a single state.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"huebar/gradient"
	"huebar/hal"
	"huebar/hsv"

	"golang.org/x/image/bmp"
)

func main() {
	var (
		outPath = flag.String("out", "", "Output image (.png or .bmp).")
		step    = flag.Int("step", 8, "State increment per sheet row, 1..31.")
		rows    = flag.Int("rows", 4, "Pixel height of each sheet row.")
		table   = flag.Bool("table", false, "Print the hue table for -s/-v instead of writing an image.")
		sat     = flag.Int("s", 0, "Saturation state for -table.")
		val     = flag.Int("v", 0, "Value state for -table.")
	)
	flag.Parse()

	if *table {
		st, err := stateFrom(*sat, *val)
		if err != nil {
			fatalf("%v", err)
		}
		writeTable(os.Stdout, st)
		return
	}

	if *outPath == "" {
		fatalf("usage: mkswatch -out sheet.png [-step 8] [-rows 4]\n       mkswatch -table [-s 0] [-v 0]")
	}
	if *step < 1 || *step > hsv.Max {
		fatalf("step out of range: %d", *step)
	}
	if *rows < 1 {
		fatalf("rows out of range: %d", *rows)
	}

	img, err := renderSheet(*step, *rows)
	if err != nil {
		fatalf("render: %v", err)
	}
	if err := writeImage(*outPath, img); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func stateFrom(s, v int) (gradient.State, error) {
	if s < 0 || s > hsv.Max || v < 0 || v > hsv.Max {
		return gradient.State{}, fmt.Errorf("state out of range: s=%d v=%d", s, v)
	}
	return gradient.State{Saturation: uint8(s), Value: uint8(v)}, nil
}

// stripBuffer is a one-row framebuffer the renderer draws into.
type stripBuffer struct {
	pix []uint16
}

func (b *stripBuffer) Width() int              { return len(b.pix) }
func (b *stripBuffer) Height() int             { return 1 }
func (b *stripBuffer) Format() hal.PixelFormat { return hal.PixelFormatBGR555 }
func (b *stripBuffer) Pixels() []uint16        { return b.pix }
func (b *stripBuffer) ClearRGB(r, g, bb uint8) {
	p := hal.PackRGB(hal.PixelFormatBGR555, r, g, bb)
	for i := range b.pix {
		b.pix[i] = p
	}
}
func (b *stripBuffer) Present() error { return nil }

// states lists every (saturation, value) pair on the step grid, always
// including both ends of each axis.
func states(step int) []gradient.State {
	var levels []uint8
	for l := 0; l < hsv.Max; l += step {
		levels = append(levels, uint8(l))
	}
	levels = append(levels, hsv.Max)

	out := make([]gradient.State, 0, len(levels)*len(levels))
	for _, s := range levels {
		for _, v := range levels {
			out = append(out, gradient.State{Saturation: s, Value: v})
		}
	}
	return out
}

func renderSheet(step, rows int) (*image.RGBA, error) {
	strip := &stripBuffer{pix: make([]uint16, hal.ScreenWidth)}
	r, err := gradient.NewRenderer(strip)
	if err != nil {
		return nil, err
	}

	sts := states(step)
	img := image.NewRGBA(image.Rect(0, 0, hal.ScreenWidth, len(sts)*rows))
	for i, st := range sts {
		r.RenderRow(st)
		for dy := 0; dy < rows; dy++ {
			y := i*rows + dy
			for x, p := range strip.pix {
				red, green, blue := hal.RGB888(strip.Format(), p)
				off := img.PixOffset(x, y)
				img.Pix[off+0] = red
				img.Pix[off+1] = green
				img.Pix[off+2] = blue
				img.Pix[off+3] = 0xFF
			}
		}
	}
	return img, nil
}

func writeTable(w io.Writer, st gradient.State) {
	s, v := st.HSV()
	fmt.Fprintf(w, "state s=%d v=%d -> hsv s=%d v=%d\n", st.Saturation, st.Value, s, v)
	fmt.Fprintln(w, "hue  r  g  b  bgr555")
	for h := uint8(0); h < hsv.Levels; h++ {
		r, g, b := hsv.ToRGB(h, s, v)
		fmt.Fprintf(w, "%3d %2d %2d %2d  0x%04x\n", h, r, g, b, hal.Pack5(hal.PixelFormatBGR555, r, g, b))
	}
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var werr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		werr = png.Encode(f, img)
	case ".bmp":
		werr = bmp.Encode(f, img)
	default:
		werr = fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}
	if werr != nil {
		f.Close()
		return werr
	}
	return f.Close()
}
