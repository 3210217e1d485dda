package hal

import "image/color"

// pack565 encodes c as little-endian RGB565, dropping alpha.
func pack565(c color.RGBA) (lo, hi byte) {
	p := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
	return byte(p), byte(p >> 8)
}

// unpack565 expands an RGB565 pixel to opaque RGBA, scaling each channel to
// the full 0-255 range.
func unpack565(lo, hi byte) color.RGBA {
	p := uint16(lo) | uint16(hi)<<8
	return color.RGBA{
		R: uint8(uint32(p>>11&0x1F) * 255 / 31),
		G: uint8(uint32(p>>5&0x3F) * 255 / 63),
		B: uint8(uint32(p&0x1F) * 255 / 31),
		A: 0xFF,
	}
}
