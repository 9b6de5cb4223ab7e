//go:build tinygo && gameboyadvance

package hal

import (
	"context"
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"
)

const (
	dispcntMode3      = 0x0003
	dispcntBG2        = 0x0400
	dispstatVBlankIRQ = 1 << 3

	irqVBlank = 0

	mgbaDebugEnable  = 0xC0DE
	mgbaDebugEnabled = 0x1DEA
	mgbaLevelInfo    = 3
	mgbaFlagSend     = 0x100
	mgbaStringBytes  = 256
)

var (
	regDISPCNT  = (*volatile.Register16)(unsafe.Pointer(uintptr(0x04000000)))
	regDISPSTAT = (*volatile.Register16)(unsafe.Pointer(uintptr(0x04000004)))
	regKEYINPUT = (*volatile.Register16)(unsafe.Pointer(uintptr(0x04000130)))
	regIME      = (*volatile.Register16)(unsafe.Pointer(uintptr(0x04000208)))

	regDebugEnable = (*volatile.Register16)(unsafe.Pointer(uintptr(0x04FFF780)))
	regDebugFlags  = (*volatile.Register16)(unsafe.Pointer(uintptr(0x04FFF700)))
	regDebugString = (*[mgbaStringBytes]volatile.Register8)(unsafe.Pointer(uintptr(0x04FFF600)))

	vram = unsafe.Slice((*uint16)(unsafe.Pointer(uintptr(0x06000000))), ScreenWidth*ScreenHeight)
)

type gbaHAL struct {
	logger  *mgbaLogger
	fb      *gbaFramebuffer
	buttons *gbaButtons
	vblank  *gbaVBlank
}

// New returns the Game Boy Advance HAL: mode-3 VRAM, KEYINPUT, and the
// vertical-blank interrupt. Logs go to the mGBA debug console when present.
func New() HAL {
	regDebugEnable.Set(mgbaDebugEnable)
	return &gbaHAL{
		logger:  &mgbaLogger{enabled: regDebugEnable.Get() == mgbaDebugEnabled},
		fb:      &gbaFramebuffer{},
		buttons: &gbaButtons{},
		vblank:  &gbaVBlank{},
	}
}

func (h *gbaHAL) Logger() Logger   { return h.logger }
func (h *gbaHAL) Display() Display { return gbaDisplay{fb: h.fb, vblank: h.vblank} }
func (h *gbaHAL) Input() Input     { return gbaInput{buttons: h.buttons} }
func (h *gbaHAL) VBlank() VBlank   { return h.vblank }

type gbaDisplay struct {
	fb     *gbaFramebuffer
	vblank *gbaVBlank
}

// Configure selects mode 3 with background 2 and arms the vblank interrupt.
func (d gbaDisplay) Configure() error {
	regDISPCNT.Set(dispcntMode3 | dispcntBG2)
	d.vblank.enable()
	return nil
}

func (d gbaDisplay) Framebuffer() Framebuffer { return d.fb }

type gbaFramebuffer struct{}

func (f *gbaFramebuffer) Width() int          { return ScreenWidth }
func (f *gbaFramebuffer) Height() int         { return ScreenHeight }
func (f *gbaFramebuffer) Format() PixelFormat { return PixelFormatBGR555 }
func (f *gbaFramebuffer) Pixels() []uint16    { return vram }
func (f *gbaFramebuffer) Present() error      { return nil }

func (f *gbaFramebuffer) ClearRGB(r, g, b uint8) {
	fillPixels(vram, PackRGB(PixelFormatBGR555, r, g, b))
}

type gbaInput struct {
	buttons *gbaButtons
}

func (in gbaInput) Buttons() Buttons { return in.buttons }

// KEYINPUT is active-low.
type gbaButtons struct {
	held ButtonMask
}

func (b *gbaButtons) Poll()            { b.held = ButtonMask(^regKEYINPUT.Get()) & ButtonsAll }
func (b *gbaButtons) Held() ButtonMask { return b.held }

var vblankFlag volatile.Register8

type gbaVBlank struct {
	armed bool
}

func (v *gbaVBlank) enable() {
	if v.armed {
		return
	}
	interrupt.New(irqVBlank, func(interrupt.Interrupt) {
		vblankFlag.Set(1)
	}).Enable()
	regDISPSTAT.SetBits(dispstatVBlankIRQ)
	regIME.Set(1)
	v.armed = true
}

func (v *gbaVBlank) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !v.armed {
		return ErrNotImplemented
	}
	vblankFlag.Set(0)
	for vblankFlag.Get() == 0 {
	}
	return nil
}

type mgbaLogger struct {
	enabled bool
}

func (l *mgbaLogger) WriteLineString(s string) {
	if !l.enabled {
		return
	}
	n := len(s)
	if n > mgbaStringBytes-1 {
		n = mgbaStringBytes - 1
	}
	for i := 0; i < n; i++ {
		regDebugString[i].Set(s[i])
	}
	regDebugString[n].Set(0)
	regDebugFlags.Set(mgbaLevelInfo | mgbaFlagSend)
}

func (l *mgbaLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
