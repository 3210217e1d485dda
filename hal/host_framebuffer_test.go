//go:build !tinygo

package hal

import (
	"image/color"
	"testing"
)

func TestFramebufferToRGBA(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	c := NewFramebufferCanvas(fb)
	c.SetPixel(1, 0, color.RGBA{R: 0xFF, A: 0xFF})

	dst := make([]byte, 2*1*4)
	fb.toRGBA(dst)

	want := []byte{0, 0, 0, 0xFF, 0xFF, 0, 0, 0xFF}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("rgba byte %d: got %#x, want %#x (%v)", i, dst[i], want[i], dst)
		}
	}
}
