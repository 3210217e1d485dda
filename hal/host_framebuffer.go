//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is the in-memory RGB565 panel behind the host canvas.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{width: width, height: height, buf: make([]byte, width*height*2)}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.width * 2 }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

// toRGBA expands the panel into dst, which holds width*height*4 bytes.
func (f *hostFramebuffer) toRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, j := 0, 0; i+1 < len(f.buf) && j+3 < len(dst); i, j = i+2, j+4 {
		c := unpack565(f.buf[i], f.buf[i+1])
		dst[j], dst[j+1], dst[j+2], dst[j+3] = c.R, c.G, c.B, c.A
	}
}
