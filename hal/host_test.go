//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func TestHostFramebufferPresent(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.ClearRGB(0xFF, 0x00, 0x00)

	front := make([]uint16, 8)
	fb.snapshot(front)
	if front[0] != 0 {
		t.Fatal("front buffer updated before Present")
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	fb.snapshot(front)
	for i, p := range front {
		if p != 0x001F {
			t.Fatalf("front[%d] = %#04x, want red", i, p)
		}
	}
}

func TestHostButtonsPollSnapshots(t *testing.T) {
	var b hostButtons
	b.set(ButtonMask(ButtonUp) | 0x8000)
	if b.Held() != 0 {
		t.Fatal("Held changed before Poll")
	}
	b.Poll()
	if b.Held() != ButtonMask(ButtonUp) {
		t.Fatalf("Held() = %#x, want up only", b.Held())
	}
	b.set(0)
	if b.Held() != ButtonMask(ButtonUp) {
		t.Fatal("Held changed between polls")
	}
}

func TestHostVBlankWaitsForNextSignal(t *testing.T) {
	v := newHostVBlank()
	v.signal()
	v.signal()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := v.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait with only stale signals = %v, want deadline", err)
	}

	done := make(chan error, 1)
	go func() { done <- v.Wait(context.Background()) }()
	deadline := time.After(time.Second)
	for {
		v.signal()
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("Wait: %v", err)
			}
			return
		case <-deadline:
			t.Fatal("Wait did not return after signal")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestRunHeadlessDrivesRunner(t *testing.T) {
	h := newHost(io.Discard)
	path := filepath.Join(t.TempDir(), "frame.bmp")

	var held ButtonMask
	run := func(ctx context.Context) error {
		fb := h.Display().Framebuffer()
		for i := 0; i < 3; i++ {
			if err := h.VBlank().Wait(ctx); err != nil {
				return err
			}
		}
		b := h.Input().Buttons()
		b.Poll()
		held = b.Held()
		fb.ClearRGB(0x00, 0xFF, 0x00)
		return fb.Present()
	}

	cfg := HeadlessConfig{Enabled: true, Hold: ButtonMask(ButtonLeft), Snapshot: path}
	if err := runHeadless(context.Background(), h, run, time.Millisecond, cfg); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if held != ButtonMask(ButtonLeft) {
		t.Fatalf("held = %s, want left", held)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != ScreenWidth || b.Dy() != ScreenHeight {
		t.Fatalf("snapshot size = %v", b)
	}
	r, g, b, _ := img.At(10, 10).RGBA()
	if r != 0 || g>>8 != 0xFF || b != 0 {
		t.Fatalf("snapshot pixel = (%d, %d, %d), want green", r>>8, g>>8, b>>8)
	}
}

func TestRunHeadlessReturnsRunnerError(t *testing.T) {
	h := newHost(io.Discard)
	boom := errors.New("boom")
	err := runHeadless(context.Background(), h, func(context.Context) error { return boom }, time.Millisecond, HeadlessConfig{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRunHeadlessRejectsSnapshotFormat(t *testing.T) {
	err := RunHeadless(context.Background(), func(HAL) Runner { return nil }, HeadlessConfig{Snapshot: "frame.gif"})
	if err == nil || !strings.Contains(err.Error(), ".gif") {
		t.Fatalf("err = %v, want unsupported format", err)
	}
}

func TestEncodeSnapshotPNG(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	_ = fb.Present()

	var buf bytes.Buffer
	if err := encodeSnapshot(&buf, ".PNG", frontImage(fb, make([]uint16, 4))); err != nil {
		t.Fatalf("encodeSnapshot: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("expected PNG signature")
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &hostLogger{w: &buf}
	l.WriteLineString("one")
	l.WriteLineBytes([]byte("two"))
	if got := buf.String(); got != "one\ntwo\n" {
		t.Fatalf("log = %q", got)
	}
}
