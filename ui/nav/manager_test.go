package nav_test

import (
	"fmt"
	"testing"

	"pagegrid/ui/grid"
	"pagegrid/ui/nav"
	"pagegrid/ui/theme"
	"pagegrid/ui/widget"

	"github.com/stretchr/testify/require"
)

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }

func page(name string, fill func(c *grid.Cells)) *grid.Page {
	var cells grid.Cells
	if fill != nil {
		fill(&cells)
	}
	return grid.New(name, cells, nil)
}

func threePages(t *testing.T, log *lines) *nav.Manager {
	t.Helper()
	m := nav.New(nav.WithLogger(log))
	require.NoError(t, m.AddPage(page("Home", func(c *grid.Cells) {
		c[0][0] = widget.NewLabel("Home")
		c[1][0] = widget.NewButton("A", nil)
		c[1][1] = widget.NewButton("B", nil)
	})))
	require.NoError(t, m.AddPage(page("Settings", func(c *grid.Cells) {
		c[2][1] = widget.NewCheckBox("Sound", false)
		c[2][2] = widget.NewCheckBox("Wifi", false)
		c[6][0] = widget.NewLink("Back", widget.RouteBack)
	})))
	require.NoError(t, m.AddPage(page("About", func(c *grid.Cells) {
		c[5][2] = widget.NewLabel("v1")
	})))
	return m
}

func TestAddPageAnchorsFirstPage(t *testing.T) {
	m := nav.New()
	require.Equal(t, "Unknown", m.CurrentPageName())
	require.Nil(t, m.CurrentPage())

	require.NoError(t, m.AddPage(page("Only", func(c *grid.Cells) {
		c[3][1] = widget.NewLabel("x")
	})))
	require.Equal(t, "Only", m.CurrentPageName())
	require.Equal(t, grid.Focus{Row: 3, Col: 1}, m.Focus())
}

func TestAddPageBounds(t *testing.T) {
	m := nav.New()
	require.ErrorIs(t, m.AddPage(nil), nav.ErrNilPage)

	for i := 0; i < nav.MaxPages; i++ {
		require.NoError(t, m.AddPage(page(fmt.Sprintf("p%d", i), nil)))
	}
	require.ErrorIs(t, m.AddPage(page("extra", nil)), nav.ErrPagesFull)
	require.Len(t, m.Pages(), nav.MaxPages)

	m2 := nav.New()
	require.NoError(t, m2.AddPage(page("dup", nil)))
	require.ErrorIs(t, m2.AddPage(page("dup", nil)), nav.ErrDuplicatePage)
}

func TestNavigateToPageReanchors(t *testing.T) {
	var log lines
	m := threePages(t, &log)

	require.NoError(t, m.NavigateToPage("Settings"))
	require.Equal(t, "Settings", m.CurrentPageName())
	require.Equal(t, grid.Focus{Row: 2, Col: 1}, m.Focus())
	require.Equal(t, "Navigated to page: Settings", log[len(log)-1])

	require.NoError(t, m.NavigateToPage("About"))
	require.Equal(t, grid.Focus{Row: 5, Col: 2}, m.Focus())
	p := m.CurrentPage()
	require.LessOrEqual(t, p.ScrollOffset(), 5)
	require.GreaterOrEqual(t, p.ScrollOffset()+grid.VisibleRows-1, 5)
}

func TestNavigateToPageMiss(t *testing.T) {
	var log lines
	m := threePages(t, &log)
	require.True(t, m.Move(grid.Down))
	before := m.Focus()

	err := m.NavigateToPage("Setings")
	require.ErrorIs(t, err, nav.ErrPageNotFound)
	require.Equal(t, "Home", m.CurrentPageName())
	require.Equal(t, before, m.Focus())
	require.Equal(t, "Page not found: Setings (did you mean: Settings?)", log[len(log)-1])

	require.Error(t, m.NavigateToPage("zzz"))
	require.Equal(t, "Page not found: zzz", log[len(log)-1])
}

func TestGoBackAndNextWrap(t *testing.T) {
	var log lines
	m := threePages(t, &log)

	require.True(t, m.GoBack())
	require.Equal(t, "About", m.CurrentPageName())
	require.Equal(t, grid.Focus{Row: 5, Col: 2}, m.Focus())
	require.Equal(t, "Went back to page: About", log[len(log)-1])

	require.True(t, m.GoNext())
	require.Equal(t, "Home", m.CurrentPageName())
	require.Equal(t, grid.Focus{Row: 0, Col: 0}, m.Focus())
	require.Equal(t, "Went forward to page: Home", log[len(log)-1])

	require.True(t, m.GoNext())
	require.Equal(t, 1, m.CurrentIndex())
}

func TestGoBackSinglePageIsNoop(t *testing.T) {
	m := nav.New()
	require.False(t, m.GoBack())
	require.NoError(t, m.AddPage(page("solo", nil)))
	require.False(t, m.GoBack())
	require.False(t, m.GoNext())
	require.Equal(t, "solo", m.CurrentPageName())
}

func TestEmptyPageAnchorsAtOrigin(t *testing.T) {
	m := nav.New()
	require.NoError(t, m.AddPage(page("a", func(c *grid.Cells) { c[4][1] = widget.NewLabel("x") })))
	require.NoError(t, m.AddPage(page("blank", nil)))
	require.True(t, m.GoNext())
	require.Equal(t, grid.Focus{}, m.Focus())
	require.False(t, m.Activate())
	require.False(t, m.Move(grid.Up))
}

func TestThemeBroadcast(t *testing.T) {
	var log lines
	m := threePages(t, &log)
	require.Equal(t, "default", m.Palette().Name)

	require.NoError(t, m.SetTheme("green"))
	for _, p := range m.Pages() {
		require.Equal(t, "green", p.Palette().Name)
	}
	require.Equal(t, "Theme: green", log[len(log)-1])

	require.ErrorIs(t, m.SetTheme("mauve"), theme.ErrUnknownTheme)
	require.Equal(t, "green", m.Palette().Name)
}

func TestPagePaletteOverridesDefault(t *testing.T) {
	m := nav.New(nav.WithPalette(&theme.BlueTheme))
	require.NoError(t, m.AddPage(grid.New("red", grid.Cells{}, &theme.RedTheme)))
	require.NoError(t, m.AddPage(page("plain", nil)))
	require.Equal(t, "red", m.Palette().Name)
	m.GoNext()
	require.Equal(t, "blue", m.Palette().Name)
}
