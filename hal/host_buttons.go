//go:build !tinygo

package hal

import "sync"

// hostButtons latches the mask set by the window or headless runner. Poll
// takes the snapshot that Held returns, so a frame sees one consistent mask.
type hostButtons struct {
	mu      sync.Mutex
	latched ButtonMask

	held ButtonMask
}

func (b *hostButtons) Poll() {
	b.mu.Lock()
	b.held = b.latched
	b.mu.Unlock()
}

func (b *hostButtons) Held() ButtonMask { return b.held }

func (b *hostButtons) set(m ButtonMask) {
	b.mu.Lock()
	b.latched = m & ButtonsAll
	b.mu.Unlock()
}
