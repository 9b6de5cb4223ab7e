package hal

import (
	"context"
	"errors"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoFramebuffer  = errors.New("no framebuffer")
)

// Screen size of the reference platform.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatBGR555 is 15bpp in 16 bits: xbbbbbgggggrrrrr.
	PixelFormatBGR555
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatBGR555:
		return "bgr555"
	default:
		return "unknown"
	}
}

// Framebuffer is a linear 16-bit pixel surface plus a "present" hook.
//
// Pixels is row-major with a stride of Width pixels.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	Pixels() []uint16
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer.
type Display interface {
	// Configure puts the display into its linear framebuffer mode with one
	// layer enabled. It is called once at startup.
	Configure() error
	Framebuffer() Framebuffer
}

// Button is one bit of a ButtonMask.
type Button uint16

// ButtonMask is a set of held buttons. Bit order follows the GBA KEYINPUT
// register.
type ButtonMask uint16

const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL
)

// ButtonsAll masks the ten defined buttons.
const ButtonsAll ButtonMask = 0x03FF

// Has reports whether b is held.
func (m ButtonMask) Has(b Button) bool { return m&ButtonMask(b) != 0 }

// Buttons is a level-triggered input device.
//
// Poll refreshes the snapshot that Held reports. Call it once per frame.
type Buttons interface {
	Poll()
	Held() ButtonMask
}

// VBlank blocks until the next vertical-blank interval begins.
type VBlank interface {
	Wait(ctx context.Context) error
}

// Input provides access to input devices.
type Input interface {
	Buttons() Buttons
}

// Runner is the program body a platform runner drives. It returns when ctx
// is cancelled or the program is done.
type Runner func(ctx context.Context) error

// HAL provides the only contact point between the program and the platform.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	VBlank() VBlank
}
