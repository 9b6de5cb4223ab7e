//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"

	"huebar/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and
// forwards held keys as buttons. Each window tick is one vertical blank.
// It blocks until the window closes or the runner returns.
func RunWindow(newApp func(HAL) Runner) error {
	h := New().(*hostHAL)
	run := newApp(h)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &hostGame{h: h, done: make(chan error, 1)}
	if run != nil {
		go func() { g.done <- run(ctx) }()
	}

	ebiten.SetWindowTitle("huebar (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*3, h.fb.height*3)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	done    chan error
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []uint16
}

// Keyboard layout follows common emulator defaults.
var hostKeymap = [...]struct {
	key    ebiten.Key
	button Button
}{
	{ebiten.KeyArrowUp, ButtonUp},
	{ebiten.KeyArrowDown, ButtonDown},
	{ebiten.KeyArrowLeft, ButtonLeft},
	{ebiten.KeyArrowRight, ButtonRight},
	{ebiten.KeyZ, ButtonA},
	{ebiten.KeyX, ButtonB},
	{ebiten.KeyEnter, ButtonStart},
	{ebiten.KeyBackspace, ButtonSelect},
	{ebiten.KeyA, ButtonL},
	{ebiten.KeyS, ButtonR},
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return ebiten.Termination
	default:
	}

	var held ButtonMask
	for _, m := range hostKeymap {
		if ebiten.IsKeyPressed(m.key) {
			held |= ButtonMask(m.button)
		}
	}
	g.h.buttons.set(held)
	g.h.vblank.signal()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]uint16, fb.width*fb.height)
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshot(g.scratch)
	toRGBA(g.img.Pix, g.scratch, fb.Format())

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
