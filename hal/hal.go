// Package hal is the boundary between the page grid and a device: a Wio
// Terminal (ILI9341 panel, 5-way switch, USB serial) under TinyGo, or a
// desktop window/headless runner on the host.
package hal

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

var ErrNotImplemented = errors.New("not implemented")

// Logger writes diagnostic lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is the user LED.
type LED interface {
	High()
	Low()
}

type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer in memory. Present pushes it to the panel,
// if there is one.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Present() error
}

// Canvas is what the renderer draws on. It is a drivers.Displayer, so
// tinyfont and tinydraw work on it directly; FillRectangle is the fast path
// for cell backgrounds.
type Canvas interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// KeyCode names one position of the 5-way switch, or Escape.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is one edge of a key: Press is true going down.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display is nil on targets without a panel.
type Display interface {
	Canvas() Canvas
}

type Input interface {
	Keyboard() Keyboard
}

// Time delivers the running tick count. One tick is 1ms on every target;
// values may skip but never go backwards.
type Time interface {
	Ticks() <-chan uint64
}

// Serial is the line console.
//
// Read never blocks: it returns 0, nil when no bytes are pending.
type Serial interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// HAL is everything the app touches outside the kernel. Any accessor may
// return nil when the target lacks the device.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Input() Input
	Time() Time
	Serial() Serial
}
