package app

import (
	"context"
	"errors"
	"fmt"

	"huebar/gradient"
	"huebar/hal"
	"huebar/internal/buildinfo"
)

// ErrUnsupportedFormat is returned when the framebuffer uses a pixel format
// the renderer cannot pack.
var ErrUnsupportedFormat = errors.New("unsupported pixel format")

type Config struct {
	// Frames stops the program after that many frames (0 = run forever).
	Frames  uint64
	Verbose bool
}

// New returns the program body for h. Platform faults and panics are shown on
// the fault screen and returned as *FaultError.
func New(h hal.HAL, cfg Config) hal.Runner {
	return func(ctx context.Context) error {
		return guard(h, func() error { return run(ctx, h, cfg) })
	}
}

// Run starts the program and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	_ = New(h, Config{})(context.Background())
	select {}
}

func run(ctx context.Context, h hal.HAL, cfg Config) error {
	log := h.Logger()

	disp := h.Display()
	if disp == nil {
		return errors.New("no display")
	}
	if err := disp.Configure(); err != nil {
		return fmt.Errorf("configure display: %w", err)
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return hal.ErrNoFramebuffer
	}
	switch fb.Format() {
	case hal.PixelFormatBGR555, hal.PixelFormatRGB565:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, fb.Format())
	}

	in := h.Input()
	if in == nil {
		return errors.New("no input")
	}

	loop, err := gradient.NewLoop(fb, in.Buttons(), h.VBlank(), log, gradient.Config{
		Frames:  cfg.Frames,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	logLine(log, fmt.Sprintf("huebar %s: %dx%d %s", buildinfo.Short(), fb.Width(), fb.Height(), fb.Format()))
	err = loop.Run(ctx)
	logLine(log, fmt.Sprintf("huebar: stopped after %d frames", loop.Frames()))
	return err
}

func logLine(l hal.Logger, s string) {
	if l != nil {
		l.WriteLineString(s)
	}
}
