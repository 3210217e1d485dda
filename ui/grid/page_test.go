package grid_test

import (
	"testing"

	"pagegrid/ui/grid"
	"pagegrid/ui/theme"
	"pagegrid/ui/widget"

	"github.com/stretchr/testify/require"
)

func TestRowLookups(t *testing.T) {
	p := scenarioPage()

	require.Equal(t, 0, p.Leftmost(0))
	require.Equal(t, 0, p.Rightmost(0))
	require.Equal(t, -1, p.Leftmost(1))
	require.Equal(t, -1, p.Rightmost(1))
	require.Equal(t, 1, p.Leftmost(2))
	require.Equal(t, 2, p.Rightmost(3))
	require.Equal(t, -1, p.Leftmost(-1))
	require.Equal(t, -1, p.Rightmost(grid.TotalRows))

	require.True(t, p.IsFullRow(0))
	require.False(t, p.IsFullRow(2))
	require.False(t, p.IsFullRow(3))
	require.Nil(t, p.Widget(9, 0))
	require.Nil(t, p.Widget(0, -1))
}

func TestAnchor(t *testing.T) {
	var cells grid.Cells
	cells[5][2] = lbl()
	cells[6][0] = lbl()
	p := grid.New("p", cells, nil)
	require.Equal(t, 5, p.FirstRow())
	require.Equal(t, grid.Focus{Row: 5, Col: 2}, p.Anchor())

	empty := grid.New("empty", grid.Cells{}, nil)
	require.Equal(t, -1, empty.FirstRow())
	require.Equal(t, grid.Focus{}, empty.Anchor())
}

func TestSelectRadioInRowIsRowScoped(t *testing.T) {
	var cells grid.Cells
	a := widget.NewRadio("a", true)
	b := widget.NewRadio("b", false)
	cb := widget.NewCheckBox("c", true)
	other := widget.NewRadio("other", true)
	cells[1][0], cells[1][1], cells[1][2] = a, b, cb
	cells[2][0] = other
	p := grid.New("p", cells, nil)

	p.SelectRadioInRow(1, b)
	require.False(t, a.Selected())
	require.True(t, b.Selected())
	require.True(t, cb.Checked())
	require.True(t, other.Selected())

	p.SelectRadioInRow(1, cb)
	require.True(t, b.Selected())
}

func TestRevealClamps(t *testing.T) {
	p := grid.New("p", grid.Cells{}, nil)
	p.Reveal(grid.Focus{Row: 7})
	require.Equal(t, 4, p.ScrollOffset())
	p.Reveal(grid.Focus{Row: 5})
	require.Equal(t, 4, p.ScrollOffset())
	p.Reveal(grid.Focus{Row: 2})
	require.Equal(t, 2, p.ScrollOffset())
	p.Reveal(grid.Focus{Row: 20})
	require.Equal(t, 4, p.ScrollOffset())
}

func TestWalkGeometry(t *testing.T) {
	p := scenarioPage()
	var got []grid.Cell
	p.Walk(320, 240, grid.Focus{Row: 3, Col: 2}, func(c grid.Cell) { got = append(got, c) })

	require.Len(t, got, 4)

	require.True(t, got[0].FullRow)
	require.Equal(t, [4]int{10, 10, 300, 51}, [4]int{got[0].X, got[0].Y, got[0].W, got[0].H})

	require.Equal(t, [4]int{111, 122, 96, 51}, [4]int{got[1].X, got[1].Y, got[1].W, got[1].H})
	require.Equal(t, [4]int{10, 178, 96, 51}, [4]int{got[2].X, got[2].Y, got[2].W, got[2].H})
	require.Equal(t, 212, got[3].X)
	require.True(t, got[3].Focused)
	require.False(t, got[2].Focused)
}

func TestWalkHonorsScroll(t *testing.T) {
	var cells grid.Cells
	cells[0][0] = lbl()
	cells[7][1] = lbl()
	p := grid.New("p", cells, nil)
	p.Reveal(grid.Focus{Row: 7})

	var rows []int
	p.Walk(320, 240, grid.Focus{}, func(c grid.Cell) { rows = append(rows, c.Row) })
	require.Equal(t, []int{7}, rows)
}

func TestScrollThumb(t *testing.T) {
	pos, size := grid.ScrollThumb(220, 0)
	require.Equal(t, 0, pos)
	require.Equal(t, 110, size)

	pos, _ = grid.ScrollThumb(220, 4)
	require.Equal(t, 110, pos)

	pos, size = grid.ScrollThumb(0, 2)
	require.Zero(t, pos)
	require.Zero(t, size)
}

func TestPalette(t *testing.T) {
	p := grid.New("p", grid.Cells{}, &theme.RedTheme)
	require.Equal(t, "red", p.Palette().Name)
	p.SetPalette(&theme.BlueTheme)
	require.Equal(t, "blue", p.Palette().Name)
	require.Equal(t, "p", p.Name())
}
