package app

import (
	"pagegrid/hal"
	"pagegrid/ui/layout"
)

// Actions returns the button actions available to layouts. Notices go to out.
func Actions(h hal.HAL, out interface{ WriteLineString(string) }) layout.Actions {
	var on bool
	return layout.Actions{
		"toggle_led": func() {
			led := h.LED()
			if led == nil {
				return
			}
			on = !on
			if on {
				led.High()
				out.WriteLineString("LED: on")
			} else {
				led.Low()
				out.WriteLineString("LED: off")
			}
		},
		"hello": func() {
			out.WriteLineString("Hello!")
		},
	}
}
