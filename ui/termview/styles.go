package termview

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"pagegrid/ui/theme"
)

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(theme.Hex(c))
}

// styles are the lipgloss equivalents of one palette.
type styles struct {
	base         lipgloss.Style
	label        lipgloss.Style
	labelFocus   lipgloss.Style
	button       lipgloss.Style
	buttonFocus  lipgloss.Style
	controlFocus lipgloss.Style
	link         lipgloss.Style
	linkFocus    lipgloss.Style
	frame        lipgloss.Style
	title        lipgloss.Style
	track        lipgloss.Style
	thumb        lipgloss.Style
	notice       lipgloss.Style
	help         lipgloss.Style
}

func newStyles(pal *theme.Palette) styles {
	if pal == nil {
		pal = &theme.Default
	}
	bg := hexColor(pal.Background)
	base := lipgloss.NewStyle().Background(bg).Foreground(hexColor(pal.Text))

	return styles{
		base:         base,
		label:        base,
		labelFocus:   lipgloss.NewStyle().Background(hexColor(pal.Accent)).Foreground(hexColor(pal.Text)),
		button:       base.Foreground(hexColor(pal.Border)),
		buttonFocus:  lipgloss.NewStyle().Background(hexColor(pal.FocusBackground)).Foreground(hexColor(pal.FocusText)).Bold(true),
		controlFocus: lipgloss.NewStyle().Background(hexColor(theme.DarkGrey)).Foreground(hexColor(pal.Text)),
		link:         base.Foreground(hexColor(pal.Accent)).Underline(true),
		linkFocus:    lipgloss.NewStyle().Background(hexColor(theme.DarkGrey)).Foreground(hexColor(pal.FocusText)).Underline(true),
		frame:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(hexColor(pal.Border)).BorderBackground(bg).Background(bg),
		title:        base.Foreground(hexColor(pal.Accent)).Bold(true),
		track:        base.Foreground(hexColor(theme.DarkGrey)),
		thumb:        base.Foreground(hexColor(pal.Border)),
		notice:       lipgloss.NewStyle().Foreground(hexColor(pal.Accent)),
		help:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
