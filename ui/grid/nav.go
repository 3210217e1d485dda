package grid

// Direction is one of the four cursor movements.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Move returns the focus reached from f in direction d. On failure it
// returns f unchanged and false. Moves that change row realign the scroll
// window; in-row horizontal moves never touch it.
func (p *Page) Move(d Direction, f Focus) (Focus, bool) {
	switch d {
	case Up:
		return p.Up(f)
	case Down:
		return p.Down(f)
	case Left:
		return p.Left(f)
	case Right:
		return p.Right(f)
	default:
		return f, false
	}
}

// Up moves to the nearest occupied row above, keeping the column when that
// cell is occupied and falling back to the row's leftmost widget. No wrap.
func (p *Page) Up(f Focus) (Focus, bool) {
	for r := f.Row - 1; r >= 0; r-- {
		if to, ok := p.land(r, f.Col); ok {
			return to, true
		}
	}
	return f, false
}

// Down mirrors Up toward increasing rows. No wrap.
func (p *Page) Down(f Focus) (Focus, bool) {
	for r := f.Row + 1; r < TotalRows; r++ {
		if to, ok := p.land(r, f.Col); ok {
			return to, true
		}
	}
	return f, false
}

func (p *Page) land(r, col int) (Focus, bool) {
	c := col
	if p.Widget(r, c) == nil {
		c = p.Leftmost(r)
		if c == -1 {
			return Focus{}, false
		}
	}
	p.realign(r)
	return Focus{Row: r, Col: c}, true
}

// Left scans the row leftward, then the rows above for their rightmost
// widget, then wraps from the bottom row up to (excluding) the current row.
// Full-row rows have no horizontal movement.
func (p *Page) Left(f Focus) (Focus, bool) {
	if p.IsFullRow(f.Row) {
		return f, false
	}
	for c := f.Col - 1; c >= 0; c-- {
		if p.Widget(f.Row, c) != nil {
			return Focus{Row: f.Row, Col: c}, true
		}
	}
	for r := f.Row - 1; r >= 0; r-- {
		if c := p.Rightmost(r); c != -1 {
			p.realign(r)
			return Focus{Row: r, Col: c}, true
		}
	}
	for r := TotalRows - 1; r > f.Row; r-- {
		if c := p.Rightmost(r); c != -1 {
			p.realign(r)
			return Focus{Row: r, Col: c}, true
		}
	}
	return f, false
}

// Right scans the row rightward, then the rows below for their leftmost
// widget, then wraps from the top row down to (excluding) the current row.
func (p *Page) Right(f Focus) (Focus, bool) {
	if p.IsFullRow(f.Row) {
		return f, false
	}
	for c := f.Col + 1; c < Cols; c++ {
		if p.Widget(f.Row, c) != nil {
			return Focus{Row: f.Row, Col: c}, true
		}
	}
	for r := f.Row + 1; r < TotalRows; r++ {
		if c := p.Leftmost(r); c != -1 {
			p.realign(r)
			return Focus{Row: r, Col: c}, true
		}
	}
	for r := 0; r < f.Row; r++ {
		if c := p.Leftmost(r); c != -1 {
			p.realign(r)
			return Focus{Row: r, Col: c}, true
		}
	}
	return f, false
}
