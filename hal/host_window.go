//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pagegrid/internal/buildinfo"
)

const windowScale = 2

// RunWindow shows the panel in a desktop window and feeds it the arrow
// keys, Enter, Space and Escape. It blocks until the window closes or the
// app step fails.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	w := &window{h: h, step: newApp(h)}

	ebiten.SetWindowTitle("pagegrid " + buildinfo.Short())
	ebiten.SetWindowSize(h.fb.width*windowScale, h.fb.height*windowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	return ebiten.RunGame(w)
}

// window adapts the host HAL to ebiten.Game.
type window struct {
	h     *hostHAL
	step  func() error
	pix   []byte
	panel *ebiten.Image
}

func (w *window) Update() error {
	w.h.kbd.poll()
	w.h.t.frame()
	if w.step == nil {
		return nil
	}
	return w.step()
}

func (w *window) Draw(screen *ebiten.Image) {
	fb := w.h.fb
	if w.panel == nil {
		w.pix = make([]byte, fb.width*fb.height*4)
		w.panel = ebiten.NewImage(fb.width, fb.height)
	}
	fb.toRGBA(w.pix)
	w.panel.WritePixels(w.pix)
	screen.DrawImage(w.panel, nil)
}

// Layout keeps the logical screen at panel resolution; ebiten scales it to
// the window.
func (w *window) Layout(int, int) (int, int) {
	return w.h.fb.width, w.h.fb.height
}
