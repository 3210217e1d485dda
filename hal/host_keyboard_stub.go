//go:build !tinygo && !cgo

package hal

// Without the window backend there is no key source; Events returns a nil
// channel, which never delivers.
type hostKeyboard struct{}

func newHostKeyboard() *hostKeyboard { return &hostKeyboard{} }

func (*hostKeyboard) Events() <-chan KeyEvent { return nil }
func (*hostKeyboard) poll()                   {}
