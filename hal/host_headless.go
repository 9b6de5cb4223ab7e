//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Hz is the simulated refresh rate.
	Hz int
	// Hold is latched as the held-button mask for the whole run.
	Hold ButtonMask
	// Snapshot, if set, receives the last presented frame (.png or .bmp).
	Snapshot string
}

// RunHeadless runs the program without opening a window. A ticker goroutine
// plays the vertical-blank interrupt; the runner executes alongside it.
func RunHeadless(ctx context.Context, newApp func(HAL) Runner, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Snapshot != "" && !snapshotFormatSupported(cfg.Snapshot) {
		return fmt.Errorf("unsupported snapshot format %q", filepath.Ext(cfg.Snapshot))
	}

	h := New().(*hostHAL)
	return runHeadless(ctx, h, newApp(h), d, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, run Runner, d time.Duration, cfg HeadlessConfig) error {
	if run == nil {
		return nil
	}
	h.buttons.set(cfg.Hold)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t := time.NewTicker(d)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				h.vblank.signal()
			}
		}
	})
	g.Go(func() error {
		defer cancel()
		return run(gctx)
	})
	err := g.Wait()
	if cfg.Snapshot != "" && (err == nil || errors.Is(err, context.Canceled)) {
		if serr := writeSnapshot(cfg.Snapshot, h.fb); serr != nil {
			return fmt.Errorf("snapshot: %w", serr)
		}
	}
	return err
}
