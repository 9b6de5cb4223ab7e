//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// frontImage converts the last presented frame to RGBA.
func frontImage(fb *hostFramebuffer, pix []uint16) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	fb.snapshot(pix)
	toRGBA(img.Pix, pix, fb.Format())
	return img
}

func toRGBA(dst []byte, src []uint16, f PixelFormat) {
	for i := 0; i < len(src) && i*4+3 < len(dst); i++ {
		r, g, b := RGB888(f, src[i])
		j := i * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

func snapshotFormatSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp":
		return true
	}
	return false
}

func encodeSnapshot(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported snapshot format %q", ext)
	}
}

func writeSnapshot(path string, fb *hostFramebuffer) error {
	img := frontImage(fb, make([]uint16, fb.width*fb.height))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeSnapshot(f, filepath.Ext(path), img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
