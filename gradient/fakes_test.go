package gradient

import (
	"context"

	"huebar/hal"
)

type fakeFramebuffer struct {
	w, h     int
	format   hal.PixelFormat
	pix      []uint16
	presents int
	events   *[]string
}

func newFakeFramebuffer(w, h int) *fakeFramebuffer {
	return &fakeFramebuffer{w: w, h: h, format: hal.PixelFormatBGR555, pix: make([]uint16, w*h)}
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return f.format }
func (f *fakeFramebuffer) Pixels() []uint16        { return f.pix }

func (f *fakeFramebuffer) ClearRGB(r, g, b uint8) {
	p := hal.PackRGB(f.format, r, g, b)
	for i := range f.pix {
		f.pix[i] = p
	}
}

func (f *fakeFramebuffer) Present() error {
	f.presents++
	record(f.events, "present")
	return nil
}

// fakeButtons replays one mask per Poll and then repeats the last one.
type fakeButtons struct {
	script []hal.ButtonMask
	polls  int
	held   hal.ButtonMask
	events *[]string
}

func (b *fakeButtons) Poll() {
	if len(b.script) > 0 {
		i := b.polls
		if i >= len(b.script) {
			i = len(b.script) - 1
		}
		b.held = b.script[i]
	}
	b.polls++
	record(b.events, "poll")
}

func (b *fakeButtons) Held() hal.ButtonMask { return b.held }

// fakeVBlank returns immediately. With cancelAfter > 0 it cancels its
// context on that wait and reports the cancellation.
type fakeVBlank struct {
	waits       int
	cancelAfter int
	cancel      context.CancelFunc
	events      *[]string
}

func (v *fakeVBlank) Wait(ctx context.Context) error {
	v.waits++
	record(v.events, "vblank")
	if v.cancelAfter > 0 && v.waits >= v.cancelAfter && v.cancel != nil {
		v.cancel()
	}
	return ctx.Err()
}

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func record(events *[]string, ev string) {
	if events != nil {
		*events = append(*events, ev)
	}
}
