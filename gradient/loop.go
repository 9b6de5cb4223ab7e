// Package gradient renders a horizontal hue gradient whose saturation and
// value follow the held direction buttons.
//
// One frame is: poll buttons, update State, wait for vertical blank, draw
// row 0, copy it down the screen, present.
package gradient

import (
	"context"
	"fmt"

	"huebar/hal"
)

// Config controls a Loop.
type Config struct {
	// Frames stops Run after that many frames. Zero runs until cancelled.
	Frames uint64
	// Verbose logs every state change.
	Verbose bool
}

// Loop owns the interaction state and the framebuffer for the life of the
// program.
type Loop struct {
	cfg     Config
	state   State
	fb      hal.Framebuffer
	r       *Renderer
	buttons hal.Buttons
	vblank  hal.VBlank
	log     hal.Logger

	frames uint64
}

// NewLoop builds a frame loop. log may be nil.
func NewLoop(fb hal.Framebuffer, buttons hal.Buttons, vblank hal.VBlank, log hal.Logger, cfg Config) (*Loop, error) {
	if buttons == nil {
		return nil, fmt.Errorf("gradient: no buttons")
	}
	if vblank == nil {
		return nil, fmt.Errorf("gradient: no vblank source")
	}
	r, err := NewRenderer(fb)
	if err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}
	return &Loop{
		cfg:     cfg,
		fb:      fb,
		r:       r,
		buttons: buttons,
		vblank:  vblank,
		log:     log,
	}, nil
}

// State returns the current interaction state.
func (l *Loop) State() State { return l.state }

// Frames returns the number of frames presented.
func (l *Loop) Frames() uint64 { return l.frames }

// Step runs one frame.
func (l *Loop) Step(ctx context.Context) error {
	l.buttons.Poll()
	if l.state.Apply(l.buttons.Held()) && l.cfg.Verbose && l.log != nil {
		l.log.WriteLineString(fmt.Sprintf("gradient: saturation=%d value=%d", l.state.Saturation, l.state.Value))
	}

	if err := l.vblank.Wait(ctx); err != nil {
		return err
	}

	l.r.Render(l.state)
	if err := l.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	l.frames++
	return nil
}

// Run steps frames until ctx is cancelled, a frame fails, or the configured
// frame count is reached.
func (l *Loop) Run(ctx context.Context) error {
	for l.cfg.Frames == 0 || l.frames < l.cfg.Frames {
		if err := l.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}
