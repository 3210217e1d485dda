package grid

import (
	"pagegrid/ui/theme"
	"pagegrid/ui/widget"
)

// Grid shape and layout metrics (pixels).
const (
	TotalRows   = 8
	VisibleRows = 4
	Cols        = 3

	Margin = 10
	Gap    = 5

	maxScroll = TotalRows - VisibleRows
)

// Cells is the fixed widget matrix of a page. Nil entries are empty cells.
type Cells [TotalRows][Cols]*widget.Widget

// Focus is a (row, col) cursor position.
type Focus struct {
	Row int
	Col int
}

// Page is a named grid of widgets plus its scroll window.
//
// A page owns its widgets for the lifetime of the process.
type Page struct {
	name    string
	cells   Cells
	scroll  int
	palette *theme.Palette
}

// New builds a page from cells. palette may be nil.
func New(name string, cells Cells, palette *theme.Palette) *Page {
	return &Page{name: name, cells: cells, palette: palette}
}

func (p *Page) Name() string                  { return p.name }
func (p *Page) ScrollOffset() int             { return p.scroll }
func (p *Page) Palette() *theme.Palette       { return p.palette }
func (p *Page) SetPalette(pal *theme.Palette) { p.palette = pal }

// Widget returns the widget at (r, c), or nil for empty or out-of-range cells.
func (p *Page) Widget(r, c int) *widget.Widget {
	if r < 0 || r >= TotalRows || c < 0 || c >= Cols {
		return nil
	}
	return p.cells[r][c]
}

// IsFullRow reports whether only column 0 of row r is occupied.
//
// A row with column 0 empty is never full-row, whatever its other cells hold.
func (p *Page) IsFullRow(r int) bool {
	return p.Widget(r, 0) != nil && p.Widget(r, 1) == nil && p.Widget(r, 2) == nil
}

// Leftmost returns the first occupied column of row r, or -1.
func (p *Page) Leftmost(r int) int {
	if r < 0 || r >= TotalRows {
		return -1
	}
	for c := 0; c < Cols; c++ {
		if p.cells[r][c] != nil {
			return c
		}
	}
	return -1
}

// Rightmost returns the last occupied column of row r, or -1.
func (p *Page) Rightmost(r int) int {
	if r < 0 || r >= TotalRows {
		return -1
	}
	for c := Cols - 1; c >= 0; c-- {
		if p.cells[r][c] != nil {
			return c
		}
	}
	return -1
}

// FirstRow returns the smallest row index holding a widget, or -1.
func (p *Page) FirstRow() int {
	for r := 0; r < TotalRows; r++ {
		if p.Leftmost(r) != -1 {
			return r
		}
	}
	return -1
}

// Anchor returns the focus a page starts with: the first occupied row at its
// leftmost column. An empty page anchors at (0, 0).
func (p *Page) Anchor() Focus {
	r := p.FirstRow()
	if r < 0 {
		return Focus{}
	}
	return Focus{Row: r, Col: p.Leftmost(r)}
}

// SelectRadioInRow selects target and deselects every other radio in row.
// Radios in other rows are left alone.
func (p *Page) SelectRadioInRow(row int, target *widget.Widget) {
	if target == nil || target.Kind() != widget.KindRadio {
		return
	}
	for c := 0; c < Cols; c++ {
		if w := p.Widget(row, c); w != nil && w.Kind() == widget.KindRadio {
			w.Deselect()
		}
	}
	target.Select()
}

// realign scrolls the window so that row is visible.
func (p *Page) realign(row int) {
	if row < p.scroll {
		p.scroll = row
	} else if row >= p.scroll+VisibleRows {
		p.scroll = row - VisibleRows + 1
	}
	if p.scroll < 0 {
		p.scroll = 0
	}
	if p.scroll > maxScroll {
		p.scroll = maxScroll
	}
}

// Reveal scrolls the window so that f is visible.
func (p *Page) Reveal(f Focus) { p.realign(f.Row) }
