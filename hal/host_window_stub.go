//go:build !tinygo && !cgo

package hal

import "errors"

var errNoWindow = errors.New("this build has no window backend (needs CGO_ENABLED=1); use --headless or the tui command")

func RunWindow(func(HAL) func() error) error { return errNoWindow }
