//go:build !tinygo

package hal

import "time"

// hostTime publishes the number of whole milliseconds since the first frame.
// Ticks missed while the channel is full are folded into the next value,
// which the kernel treats as a jump.
type hostTime struct {
	ch    chan uint64
	start time.Time
	seq   uint64
	now   func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 64), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// frame publishes the current tick, if it advanced.
func (t *hostTime) frame() {
	now := t.now()
	if t.start.IsZero() {
		t.start = now
	}
	seq := uint64(now.Sub(t.start)/time.Millisecond) + 1
	if seq <= t.seq {
		return
	}
	select {
	case t.ch <- seq:
		t.seq = seq
	default:
	}
}
