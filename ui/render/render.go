// Package render rasterizes a grid page onto a hal.Canvas.
package render

import (
	"image/color"

	"pagegrid/hal"
	"pagegrid/ui/grid"
	"pagegrid/ui/theme"
	"pagegrid/ui/widget"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	// textAscent is the cap height of the UI font, used to center text
	// on a cell's midline.
	textAscent = 8

	scrollBarW     = 6
	scrollBarInset = 8

	radioOuter  = 8
	radioInner  = 5
	radioX      = 10
	boxSize     = 16
	boxFill     = 12
	boxX        = 2
	controlText = 25
)

// Renderer draws pages. It keeps no page state; every Draw is a full frame.
type Renderer struct {
	c    hal.Canvas
	font tinyfont.Fonter
	err  error
}

// New returns a Renderer for c.
func New(c hal.Canvas) *Renderer {
	return &Renderer{c: c, font: &proggy.TinySZ8pt7b}
}

// Draw renders p with the given focus and palette, then presents the frame.
func (r *Renderer) Draw(p *grid.Page, focus grid.Focus, pal *theme.Palette) error {
	if r.c == nil || p == nil {
		return nil
	}
	if pal == nil {
		pal = &theme.Default
	}
	w, h := r.c.Size()
	r.err = nil
	r.fill(0, 0, w, h, pal.Background)
	if r.err != nil {
		return r.err
	}

	r.scrollIndicator(int(w), int(h), p.ScrollOffset(), pal)

	p.Walk(int(w), int(h), focus, func(cell grid.Cell) {
		r.cell(cell, pal)
	})
	if r.err != nil {
		return r.err
	}
	return r.c.Display()
}

// fill keeps the first canvas error of the frame.
func (r *Renderer) fill(x, y, w, h int16, c color.RGBA) {
	if err := r.c.FillRectangle(x, y, w, h, c); err != nil && r.err == nil {
		r.err = err
	}
}

func (r *Renderer) scrollIndicator(w, h, scroll int, pal *theme.Palette) {
	track := h - 2*grid.Margin
	pos, size := grid.ScrollThumb(track, scroll)
	x := int16(w - scrollBarInset)

	tinydraw.Rectangle(r.c, x, grid.Margin, scrollBarW, int16(track), theme.DarkGrey)
	r.fill(x, int16(grid.Margin+pos), scrollBarW, int16(size), pal.Border)
}

func (r *Renderer) cell(cell grid.Cell, pal *theme.Palette) {
	x, y := int16(cell.X), int16(cell.Y)
	w, h := int16(cell.W), int16(cell.H)
	mid := y + h/2
	wd := cell.Widget

	switch wd.Kind() {
	case widget.KindLabel:
		fg := pal.Text
		if cell.Focused {
			r.fill(x, y, w, h, pal.Accent)
		}
		r.centered(wd.Text(), x, y, w, h, fg)

	case widget.KindButton:
		fg := pal.Text
		if cell.Focused {
			r.fill(x, y, w, h, pal.FocusBackground)
			fg = pal.FocusText
		} else {
			tinydraw.Rectangle(r.c, x, y, w, h, pal.Border)
		}
		r.centered(wd.Text(), x, y, w, h, fg)

	case widget.KindRadio:
		if cell.Focused {
			r.fill(x, y, w, h, theme.DarkGrey)
		}
		tinydraw.Circle(r.c, x+radioX, mid, radioOuter, pal.Border)
		if wd.Selected() {
			tinydraw.FilledCircle(r.c, x+radioX, mid, radioInner, pal.Accent)
		}
		r.left(wd.Text(), x+controlText, mid, w-controlText, pal.Text)

	case widget.KindCheckBox:
		if cell.Focused {
			r.fill(x, y, w, h, theme.DarkGrey)
		}
		tinydraw.Rectangle(r.c, x+boxX, mid-boxSize/2, boxSize, boxSize, pal.Border)
		if wd.Checked() {
			r.fill(x+boxX+2, mid-boxFill/2, boxFill, boxFill, pal.Accent)
		}
		r.left(wd.Text(), x+controlText, mid, w-controlText, pal.Text)

	case widget.KindLink:
		fg := pal.Accent
		if cell.Focused {
			r.fill(x, y, w, h, theme.DarkGrey)
			fg = pal.FocusText
		}
		r.centered(wd.Text(), x, y, w, h, fg)
	}
}

func (r *Renderer) centered(s string, x, y, w, h int16, c color.RGBA) {
	s = fit(r.font, s, int(w)-4)
	tw, _ := tinyfont.LineWidth(r.font, s)
	tx := x + (w-int16(tw))/2
	tinyfont.WriteLine(r.c, r.font, tx, y+h/2+textAscent/2, s, c)
}

func (r *Renderer) left(s string, x, mid, w int16, c color.RGBA) {
	s = fit(r.font, s, int(w)-2)
	tinyfont.WriteLine(r.c, r.font, x, mid+textAscent/2, s, c)
}

// fit trims s from the right until it is at most maxW pixels wide.
func fit(f tinyfont.Fonter, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	rs := []rune(s)
	for len(rs) > 0 {
		w, _ := tinyfont.LineWidth(f, string(rs))
		if int(w) <= maxW {
			break
		}
		rs = rs[:len(rs)-1]
	}
	return string(rs)
}
