//go:build !tinygo

package hal

import "context"

// hostVBlank stands in for the vertical-blank interrupt. signal is the
// "interrupt handler": it raises a one-slot flag, and pending signals
// coalesce the way an unacknowledged IRQ flag does.
type hostVBlank struct {
	ch chan struct{}
}

func newHostVBlank() *hostVBlank {
	return &hostVBlank{ch: make(chan struct{}, 1)}
}

func (v *hostVBlank) signal() {
	select {
	case v.ch <- struct{}{}:
	default:
	}
}

// Wait discards a stale flag and then blocks until the next signal, matching
// VBlankIntrWait semantics.
func (v *hostVBlank) Wait(ctx context.Context) error {
	select {
	case <-v.ch:
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-v.ch:
		return nil
	}
}
