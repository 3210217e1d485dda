//go:build !tinygo

package hal

import (
	"io"
	"sync"
)

// hostSerial turns a blocking reader (stdin) into the non-blocking Serial
// contract with a pump goroutine.
type hostSerial struct {
	r io.Reader
	w io.Writer

	wmu *sync.Mutex

	start   sync.Once
	in      chan []byte
	pending []byte
}

func newHostSerial(r io.Reader, w io.Writer, wmu *sync.Mutex) *hostSerial {
	return &hostSerial{r: r, w: w, wmu: wmu, in: make(chan []byte, 16)}
}

func (s *hostSerial) Read(p []byte) (int, error) {
	if s.r == nil {
		return 0, ErrNotImplemented
	}
	s.start.Do(func() { go s.pump() })

	if len(s.pending) == 0 {
		select {
		case b, ok := <-s.in:
			if !ok {
				return 0, io.EOF
			}
			s.pending = b
		default:
			return 0, nil
		}
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *hostSerial) pump() {
	defer close(s.in)
	buf := make([]byte, 256)
	for {
		n, err := s.r.Read(buf)
		if n > 0 {
			b := make([]byte, n)
			copy(b, buf[:n])
			s.in <- b
		}
		if err != nil {
			return
		}
	}
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.wmu.Lock()
	defer s.wmu.Unlock()
	return s.w.Write(p)
}
