package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"huebar/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// FaultError is an unrecoverable platform failure or a recovered panic.
type FaultError struct {
	Err   error
	Value any
	Stack []byte
}

func (e *FaultError) Error() string {
	if e.Err != nil {
		return "fault: " + e.Err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *FaultError) Unwrap() error { return e.Err }

// guard runs fn and turns a returned error or a panic into a FaultError.
// Cancellation is not a fault.
func guard(h hal.HAL, fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			f := &FaultError{Value: v, Stack: captureStack()}
			showFault(h, f)
			err = f
		}
	}()

	if err := fn(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		f := &FaultError{Err: err}
		showFault(h, f)
		return f
	}
	return nil
}

func faultLines(f *FaultError) []string {
	lines := []string{"huebar fault:"}
	if f.Err != nil {
		lines = append(lines, f.Err.Error())
	} else {
		lines = append(lines, fmt.Sprintf("panic: %v", f.Value))
	}
	if len(f.Stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(f.Stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	}
	return lines
}

func showFault(h hal.HAL, f *FaultError) {
	lines := faultLines(f)
	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(0x80, 0x00, 0x00)
	drawLines(faultDisplay{fb: fb}, lines)
	_ = fb.Present()
}

var (
	faultFont  = &proggy.TinySZ8pt7b
	faultWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func drawLines(d drivers.Displayer, lines []string) {
	fontHeight := int16(faultFont.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(faultFont, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		return
	}

	w, h := d.Size()
	cols := w / fontWidth
	if cols <= 0 {
		cols = 1
	}
	y := fontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > h {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, faultFont, 0, y, chunk, faultWhite)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

// faultDisplay adapts a hal.Framebuffer to the tinyfont drawing target.
type faultDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = faultDisplay{}

func (d faultDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d faultDisplay) SetPixel(x, y int16, c color.RGBA) {
	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}
	pix := d.fb.Pixels()
	off := iy*w + ix
	if off >= len(pix) {
		return
	}
	pix[off] = hal.PackRGB(d.fb.Format(), c.R, c.G, c.B)
}

func (d faultDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
