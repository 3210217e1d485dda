package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// FramebufferCanvas draws into an RGB565 Framebuffer.
type FramebufferCanvas struct {
	fb Framebuffer
}

// NewFramebufferCanvas wraps fb. A nil fb yields a zero-size canvas that
// drops all drawing.
func NewFramebufferCanvas(fb Framebuffer) *FramebufferCanvas {
	return &FramebufferCanvas{fb: fb}
}

func (d *FramebufferCanvas) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *FramebufferCanvas) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off], buf[off+1] = pack565(c)
}

func (d *FramebufferCanvas) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *FramebufferCanvas) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	w, h := d.fb.Width(), d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	lo, hi := pack565(c)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *FramebufferCanvas) SetRotation(drivers.Rotation) error { return nil }

// PixelAt decodes the pixel at (x, y). Out-of-range reads return black.
func (d *FramebufferCanvas) PixelAt(x, y int) color.RGBA {
	if d.fb == nil || x < 0 || y < 0 || x >= d.fb.Width() || y >= d.fb.Height() {
		return color.RGBA{A: 0xFF}
	}
	buf := d.fb.Buffer()
	off := y*d.fb.StrideBytes() + x*2
	if off+1 >= len(buf) {
		return color.RGBA{A: 0xFF}
	}
	return unpack565(buf[off], buf[off+1])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
