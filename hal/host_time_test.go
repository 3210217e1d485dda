//go:build !tinygo

package hal

import (
	"testing"
	"time"
)

func TestHostTimeFrames(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	ht.frame()
	if got := <-ht.Ticks(); got != 1 {
		t.Fatalf("first frame: got tick %d, want 1", got)
	}

	now = base.Add(500 * time.Microsecond)
	ht.frame()
	if n := len(ht.Ticks()); n != 0 {
		t.Fatalf("sub-millisecond frame published %d ticks", n)
	}

	now = base.Add(16 * time.Millisecond)
	ht.frame()
	if got := <-ht.Ticks(); got != 17 {
		t.Fatalf("after 16ms: got tick %d, want 17", got)
	}
}

func TestHostTimeFoldsWhenFull(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	for i := 0; i < cap(ht.ch)+10; i++ {
		now = now.Add(time.Millisecond)
		ht.frame()
	}
	var last uint64
	for len(ht.ch) > 0 {
		last = <-ht.ch
	}
	now = now.Add(time.Millisecond)
	ht.frame()
	got := <-ht.ch
	if got <= last || got != uint64(now.Sub(ht.start)/time.Millisecond)+1 {
		t.Fatalf("after drain: got %d, last %d", got, last)
	}
}
