package app

import (
	"image/color"
	"strings"

	"pagegrid/hal"
	"pagegrid/kernel"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const panicLineHeight = 12

var (
	panicBG = color.RGBA{R: 0x80, A: 0xFF}
	panicFG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// installPanicHandler reports task panics on the log and paints a panic
// screen. The kernel stops the failed task; the others keep running, so the
// serial console stays alive.
func installPanicHandler(k *kernel.Kernel, h hal.HAL) {
	k.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := []string{"pagegrid panic:", info.String()}
		for _, line := range strings.Split(string(info.Stack), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}

		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		disp := h.Display()
		if disp == nil {
			return
		}
		c := disp.Canvas()
		if c == nil {
			return
		}
		w, hgt := c.Size()
		_ = c.FillRectangle(0, 0, w, hgt, panicBG)

		font := &proggy.TinySZ8pt7b
		y := int16(panicLineHeight)
		for _, line := range lines {
			if y > hgt {
				break
			}
			tinyfont.WriteLine(c, font, 4, y, line, panicFG)
			y += panicLineHeight
		}
		_ = c.Display()
	})
}
