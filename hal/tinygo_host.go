//go:build tinygo && !gameboyadvance

package hal

import (
	"context"
	"time"
)

type tinyGoHostHAL struct {
	logger  *tinyGoHostLogger
	fb      *tinyGoHostFramebuffer
	buttons *tinyGoHostButtons
	vblank  *tinyGoHostVBlank
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no
// display hardware: the framebuffer is plain memory and vertical blanks come
// from a 60 Hz ticker.
func New() HAL {
	return &tinyGoHostHAL{
		logger:  &tinyGoHostLogger{},
		fb:      newTinyGoHostFramebuffer(ScreenWidth, ScreenHeight),
		buttons: &tinyGoHostButtons{},
		vblank:  &tinyGoHostVBlank{},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Input() Input     { return tinyGoHostInput{buttons: h.buttons} }
func (h *tinyGoHostHAL) VBlank() VBlank   { return h.vblank }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Configure() error         { return nil }
func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostInput struct {
	buttons Buttons
}

func (in tinyGoHostInput) Buttons() Buttons { return in.buttons }

// No input device on tinygo host targets.
type tinyGoHostButtons struct{}

func (b *tinyGoHostButtons) Poll()            {}
func (b *tinyGoHostButtons) Held() ButtonMask { return 0 }

type tinyGoHostVBlank struct {
	ticker *time.Ticker
}

func (v *tinyGoHostVBlank) Wait(ctx context.Context) error {
	if v.ticker == nil {
		v.ticker = time.NewTicker(time.Second / 60)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-v.ticker.C:
		return nil
	}
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
