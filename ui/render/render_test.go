package render_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"pagegrid/ui/grid"
	"pagegrid/ui/render"
	"pagegrid/ui/theme"
	"pagegrid/ui/widget"

	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"
)

type canvas struct {
	img      *image.RGBA
	displays int
}

func newCanvas(w, h int) *canvas {
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *canvas) Size() (int16, int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) { c.img.SetRGBA(int(x), int(y), col) }

func (c *canvas) Display() error {
	c.displays++
	return nil
}

func (c *canvas) FillRectangle(x, y, w, h int16, col color.RGBA) error {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.img.SetRGBA(int(px), int(py), col)
		}
	}
	return nil
}

func (c *canvas) SetRotation(drivers.Rotation) error { return nil }

// failingCanvas fails every fill after the first ok.
type failingCanvas struct {
	*canvas
	ok    int
	fills int
}

var errBus = errors.New("spi bus fault")

func (c *failingCanvas) FillRectangle(x, y, w, h int16, col color.RGBA) error {
	c.fills++
	if c.fills > c.ok {
		return errBus
	}
	return c.canvas.FillRectangle(x, y, w, h, col)
}

func (c *canvas) at(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

// 320x240 viewport: cells are 96x51, rows start at y=10, 66, 122, 178.
func samplePage() *grid.Page {
	var cells grid.Cells
	cells[0][0] = widget.NewLabel("Main Menu")
	cells[1][0] = widget.NewButton("Go", nil)
	cells[1][1] = widget.NewRadio("On", true)
	cells[1][2] = widget.NewCheckBox("Sound", true)
	cells[2][0] = widget.NewLink("About", "/About")
	cells[2][1] = widget.NewRadio("Off", false)
	cells[5][0] = widget.NewLabel("Below the fold")
	return grid.New("Home", cells, nil)
}

func TestDrawWidgets(t *testing.T) {
	c := newCanvas(320, 240)
	r := render.New(c)
	p := samplePage()
	pal := &theme.Default

	require.NoError(t, r.Draw(p, grid.Focus{Row: 1, Col: 0}, pal))
	require.Equal(t, 1, c.displays)

	// Background and unfocused full-row label.
	require.Equal(t, pal.Background, c.at(0, 0))
	require.Equal(t, pal.Background, c.at(12, 12))

	// Focused button fills with the focus background.
	require.Equal(t, pal.FocusBackground, c.at(12, 68))

	// Selected radio: accent dot at (x+10, mid).
	require.Equal(t, pal.Accent, c.at(111+10, 66+25))

	// Checked checkbox: border outline and accent fill.
	require.Equal(t, pal.Border, c.at(212+2, 66+25-8))
	require.Equal(t, pal.Accent, c.at(212+8, 66+25))

	// Unselected radio on row 2 has no dot.
	require.Equal(t, pal.Background, c.at(111+10, 122+25))

	// Scroll indicator: thumb at the top of the track, track outline below it.
	require.Equal(t, pal.Border, c.at(314, 15))
	require.Equal(t, theme.DarkGrey, c.at(312, 200))
	require.Equal(t, pal.Background, c.at(314, 200))

	// Row 5 is outside the window.
	require.Equal(t, pal.Background, c.at(12, 178+2))
}

func TestDrawFocusStyles(t *testing.T) {
	c := newCanvas(320, 240)
	r := render.New(c)
	p := samplePage()
	pal := &theme.BlueTheme

	require.NoError(t, r.Draw(p, grid.Focus{Row: 0, Col: 0}, pal))
	require.Equal(t, pal.Accent, c.at(12, 12), "focused label fills with accent")
	require.Equal(t, pal.Border, c.at(10, 66), "unfocused button is outlined")

	require.NoError(t, r.Draw(p, grid.Focus{Row: 1, Col: 1}, pal))
	require.Equal(t, theme.DarkGrey, c.at(111+2, 66+2), "focused radio fills dark grey")

	require.NoError(t, r.Draw(p, grid.Focus{Row: 2, Col: 0}, pal))
	require.Equal(t, theme.DarkGrey, c.at(12, 124), "focused link fills dark grey")
}

func TestDrawScrolled(t *testing.T) {
	c := newCanvas(320, 240)
	r := render.New(c)
	p := samplePage()
	p.Reveal(grid.Focus{Row: 5, Col: 0})
	require.Equal(t, 2, p.ScrollOffset())

	pal := &theme.Default
	require.NoError(t, r.Draw(p, grid.Focus{Row: 5, Col: 0}, pal))

	// Row 5 is now the fourth visible row and focused.
	require.Equal(t, pal.Accent, c.at(12, 178+2))

	// Thumb moved halfway: pos = (220-110)*2/4 = 55.
	require.Equal(t, theme.DarkGrey, c.at(312, 10+40))
	require.Equal(t, pal.Border, c.at(314, 10+60))
}

func TestDrawNilPalette(t *testing.T) {
	c := newCanvas(320, 240)
	require.NoError(t, render.New(c).Draw(samplePage(), grid.Focus{}, nil))
	require.Equal(t, theme.Default.Background, c.at(0, 0))
	require.NoError(t, render.New(c).Draw(nil, grid.Focus{}, nil))
}

func TestDrawReportsFillError(t *testing.T) {
	// Background fails: nothing else is drawn.
	c := &failingCanvas{canvas: newCanvas(320, 240)}
	require.ErrorIs(t, render.New(c).Draw(samplePage(), grid.Focus{}, nil), errBus)
	require.Equal(t, 1, c.fills)
	require.Zero(t, c.displays)

	// Background succeeds, a later widget fill fails: the frame is not presented.
	c = &failingCanvas{canvas: newCanvas(320, 240), ok: 2}
	r := render.New(c)
	require.ErrorIs(t, r.Draw(samplePage(), grid.Focus{Row: 1, Col: 0}, nil), errBus)
	require.Greater(t, c.fills, 2)
	require.Zero(t, c.displays)

	// The error does not stick to the next frame.
	c.ok = 1 << 20
	require.NoError(t, r.Draw(samplePage(), grid.Focus{Row: 1, Col: 0}, nil))
	require.Equal(t, 1, c.displays)
}
