package grid

import "pagegrid/ui/widget"

// Cell is one visible occupied grid cell with its on-screen rectangle.
type Cell struct {
	Row, Col   int
	X, Y, W, H int
	FullRow    bool
	Focused    bool
	Widget     *widget.Widget
}

// CellSize returns the size of a normal cell in a viewW x viewH viewport.
func CellSize(viewW, viewH int) (w, h int) {
	w = (viewW - 2*Margin - (Cols-1)*Gap) / Cols
	h = (viewH - 2*Margin - (VisibleRows-1)*Gap) / VisibleRows
	return w, h
}

// Walk calls fn for every occupied cell inside the scroll window, top to
// bottom and left to right. Full-row widgets span the viewport width.
func (p *Page) Walk(viewW, viewH int, focus Focus, fn func(Cell)) {
	cellW, cellH := CellSize(viewW, viewH)

	for v := 0; v < VisibleRows; v++ {
		r := p.scroll + v
		if r >= TotalRows {
			break
		}
		full := p.IsFullRow(r)
		y := Margin + v*(cellH+Gap)

		for c := 0; c < Cols; c++ {
			w := p.cells[r][c]
			if w == nil {
				continue
			}
			cell := Cell{
				Row: r, Col: c,
				Y: y, H: cellH,
				FullRow: full,
				Focused: r == focus.Row && c == focus.Col,
				Widget:  w,
			}
			if full {
				cell.X = Margin
				cell.W = viewW - 2*Margin
			} else {
				cell.X = Margin + c*(cellW+Gap)
				cell.W = cellW
			}
			fn(cell)
		}
	}
}

// ScrollThumb returns the thumb offset and length of the scroll indicator
// for a track of the given length.
func ScrollThumb(track, scroll int) (pos, size int) {
	if TotalRows <= VisibleRows || track <= 0 {
		return 0, track
	}
	size = track * VisibleRows / TotalRows
	pos = (track - size) * scroll / maxScroll
	return pos, size
}
