package termview

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pagegrid/hal"
)

const keyQueue = 16

// HAL backs the app with the terminal: key presses from the model, a line
// buffer for the serial console and a wall-clock millisecond tick.
type HAL struct {
	keys  chan hal.KeyEvent
	ticks chan uint64

	start time.Time
	seq   uint64

	mu      sync.Mutex
	in      bytes.Buffer
	partial []byte
	out     []string

	led bool
}

func NewHAL() *HAL {
	return &HAL{
		keys:  make(chan hal.KeyEvent, keyQueue),
		ticks: make(chan uint64, 1024),
	}
}

func (h *HAL) Logger() hal.Logger { return (*halLogger)(h) }
func (h *HAL) LED() hal.LED       { return (*halLED)(h) }
func (h *HAL) Display() hal.Display {
	return nil
}
func (h *HAL) Input() hal.Input   { return h }
func (h *HAL) Time() hal.Time     { return h }
func (h *HAL) Serial() hal.Serial { return (*halSerial)(h) }

func (h *HAL) Keyboard() hal.Keyboard { return h }

func (h *HAL) Events() <-chan hal.KeyEvent { return h.keys }
func (h *HAL) Ticks() <-chan uint64        { return h.ticks }

// Press queues a press and release of code. It reports false when the queue
// is full.
func (h *HAL) Press(code hal.KeyCode) bool {
	if len(h.keys)+2 > cap(h.keys) {
		return false
	}
	h.keys <- hal.KeyEvent{Code: code, Press: true}
	h.keys <- hal.KeyEvent{Code: code}
	return true
}

// SendLine queues one console line for the serial service.
func (h *HAL) SendLine(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.in.WriteString(line)
	h.in.WriteByte('\n')
}

// Advance publishes ticks up to now.
func (h *HAL) Advance(now time.Time) {
	if h.start.IsZero() {
		h.start = now
	}
	target := uint64(now.Sub(h.start) / time.Millisecond)
	if target <= h.seq {
		return
	}
	h.seq = target
	select {
	case h.ticks <- target:
	default:
	}
}

// Drain returns and clears the console lines written since the last call.
func (h *HAL) Drain() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.out
	h.out = nil
	return out
}

func (h *HAL) LEDOn() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.led
}

type halSerial HAL

func (s *halSerial) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.in.Len() == 0 {
		return 0, nil
	}
	return s.in.Read(p)
}

func (s *halSerial) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partial = append(s.partial, p...)
	for {
		i := bytes.IndexByte(s.partial, '\n')
		if i < 0 {
			break
		}
		s.out = append(s.out, strings.TrimRight(string(s.partial[:i]), "\r"))
		s.partial = s.partial[i+1:]
	}
	return len(p), nil
}

// The terminal belongs to the model, so log lines go to slog.
type halLogger HAL

func (l *halLogger) WriteLineString(s string) { slog.Info(s) }
func (l *halLogger) WriteLineBytes(b []byte)  { slog.Info(string(b)) }

type halLED HAL

func (l *halLED) High() { l.set(true) }
func (l *halLED) Low()  { l.set(false) }

func (l *halLED) set(on bool) {
	l.mu.Lock()
	l.led = on
	l.mu.Unlock()
}
