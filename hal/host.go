//go:build !tinygo

package hal

import (
	"io"
	"os"
	"sync"
)

// The host panel matches the Wio Terminal display in landscape.
const (
	hostWidth  = 320
	hostHeight = 240
)

type hostHAL struct {
	out    *hostConsole
	led    hostLED
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	serial *hostSerial
}

// New returns the host HAL on the process stdio.
func New() HAL {
	return NewWith(os.Stdin, os.Stdout)
}

// NewWith returns a host HAL whose serial input comes from in. Serial
// output and log lines share out. A nil in disables serial input.
func NewWith(in io.Reader, out io.Writer) HAL {
	console := &hostConsole{w: out}
	h := &hostHAL{
		out:    console,
		fb:     newHostFramebuffer(hostWidth, hostHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
		serial: newHostSerial(in, out, &console.mu),
	}
	h.led.log = console
	return h
}

func (h *hostHAL) Logger() Logger   { return h.out }
func (h *hostHAL) LED() LED         { return &h.led }
func (h *hostHAL) Display() Display { return h }
func (h *hostHAL) Input() Input     { return h }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Serial() Serial   { return h.serial }

func (h *hostHAL) Canvas() Canvas     { return NewFramebufferCanvas(h.fb) }
func (h *hostHAL) Keyboard() Keyboard { return h.kbd }

// hostConsole prefixes log lines so they stand apart from console replies
// on the shared stream.
type hostConsole struct {
	mu sync.Mutex
	w  io.Writer
}

func (c *hostConsole) WriteLineString(s string) {
	c.WriteLineBytes([]byte(s))
}

func (c *hostConsole) WriteLineBytes(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	line := make([]byte, 0, len(b)+3)
	line = append(line, "# "...)
	line = append(line, b...)
	line = append(line, '\n')
	_, _ = c.w.Write(line)
}

// hostLED has no pin; it reports level changes on the log.
type hostLED struct {
	log Logger
	on  bool
}

func (l *hostLED) High() { l.set(true) }
func (l *hostLED) Low()  { l.set(false) }

func (l *hostLED) set(on bool) {
	if l.on == on {
		return
	}
	l.on = on
	if on {
		l.log.WriteLineString("led on")
	} else {
		l.log.WriteLineString("led off")
	}
}
