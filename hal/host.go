//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger  *hostLogger
	fb      *hostFramebuffer
	buttons *hostButtons
	vblank  *hostVBlank
}

// New returns a host HAL implementation.
func New() HAL {
	return newHost(os.Stdout)
}

func newHost(w io.Writer) *hostHAL {
	return &hostHAL{
		logger:  &hostLogger{w: w},
		fb:      newHostFramebuffer(ScreenWidth, ScreenHeight),
		buttons: &hostButtons{},
		vblank:  newHostVBlank(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{buttons: h.buttons} }
func (h *hostHAL) VBlank() VBlank   { return h.vblank }

type hostDisplay struct {
	fb *hostFramebuffer
}

// Configure is a no-op: the host framebuffer is always in linear mode.
func (d hostDisplay) Configure() error         { return nil }
func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	buttons *hostButtons
}

func (in hostInput) Buttons() Buttons { return in.buttons }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
