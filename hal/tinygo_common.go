//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	c Canvas
}

func (d tinyGoDisplay) Canvas() Canvas { return d.c }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

// serialLogger writes log lines to the console serial port.
type serialLogger struct {
	s machine.Serialer
}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.s.WriteByte(s[i])
	}
	l.s.WriteByte('\r')
	l.s.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	l.s.Write(b)
	l.s.WriteByte('\r')
	l.s.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

type consoleSerial struct {
	s machine.Serialer
}

func (c *consoleSerial) Read(p []byte) (int, error) {
	if c.s == nil {
		return 0, ErrNotImplemented
	}
	n := 0
	for n < len(p) && c.s.Buffered() > 0 {
		b, err := c.s.ReadByte()
		if err != nil {
			break
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (c *consoleSerial) Write(p []byte) (int, error) {
	if c.s == nil {
		return 0, ErrNotImplemented
	}
	return c.s.Write(p)
}

// pinKey maps an active-low input pin to a key code.
type pinKey struct {
	pin  machine.Pin
	code KeyCode
	down bool
}

// pinKeyboard polls a set of buttons and reports edges.
type pinKeyboard struct {
	ch   chan KeyEvent
	keys []pinKey
}

func newPinKeyboard(keys []pinKey) *pinKeyboard {
	k := &pinKeyboard{ch: make(chan KeyEvent, 16), keys: keys}
	for i := range k.keys {
		k.keys[i].pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	go k.run()
	return k
}

func (k *pinKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *pinKeyboard) run() {
	for {
		for i := range k.keys {
			key := &k.keys[i]
			down := !key.pin.Get()
			if down == key.down {
				continue
			}
			key.down = down
			select {
			case k.ch <- KeyEvent{Code: key.code, Press: down}:
			default:
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
}
