package theme

import (
	"errors"
	"fmt"
	"image/color"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Panel colors, matching the stock TFT palette.
var (
	Black     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	White     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Navy      = color.RGBA{R: 0x00, G: 0x00, B: 0x80, A: 0xff}
	DarkGreen = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	DarkGrey  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	Blue      = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	Green     = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	Cyan      = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	Red       = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	Yellow    = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	Orange    = color.RGBA{R: 0xff, G: 0xb4, B: 0x00, A: 0xff}
)

// Palette holds the eight color roles used by the renderers.
type Palette struct {
	Name string

	Background           color.RGBA
	Text                 color.RGBA
	FocusBackground      color.RGBA
	FocusText            color.RGBA
	LabelFocusBackground color.RGBA
	LabelFocusText       color.RGBA
	Accent               color.RGBA
	Border               color.RGBA
}

var (
	Default = Palette{
		Name:                 "default",
		Background:           Black,
		Text:                 White,
		FocusBackground:      Blue,
		FocusText:            Yellow,
		LabelFocusBackground: DarkGrey,
		LabelFocusText:       Cyan,
		Accent:               Green,
		Border:               White,
	}
	RedTheme = Palette{
		Name:                 "red",
		Background:           Black,
		Text:                 Red,
		FocusBackground:      Red,
		FocusText:            White,
		LabelFocusBackground: DarkGrey,
		LabelFocusText:       Orange,
		Accent:               Orange,
		Border:               Red,
	}
	BlueTheme = Palette{
		Name:                 "blue",
		Background:           Navy,
		Text:                 Cyan,
		FocusBackground:      Blue,
		FocusText:            White,
		LabelFocusBackground: DarkGrey,
		LabelFocusText:       Green,
		Accent:               Green,
		Border:               Cyan,
	}
	GreenTheme = Palette{
		Name:                 "green",
		Background:           Black,
		Text:                 Green,
		FocusBackground:      DarkGreen,
		FocusText:            White,
		LabelFocusBackground: DarkGrey,
		LabelFocusText:       Yellow,
		Accent:               Yellow,
		Border:               Green,
	}
)

var builtins = []*Palette{&Default, &RedTheme, &BlueTheme, &GreenTheme}

// Lookup returns a built-in palette by name.
func Lookup(name string) (*Palette, error) {
	for _, p := range builtins {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Names lists the built-in palette names in declaration order.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for _, p := range builtins {
		out = append(out, p.Name)
	}
	return out
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
