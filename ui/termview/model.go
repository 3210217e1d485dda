// Package termview renders the page grid in a terminal with bubbletea and
// feeds terminal keys and typed command lines into the running system.
package termview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pagegrid/hal"
	"pagegrid/ui/grid"
	"pagegrid/ui/nav"
	"pagegrid/ui/widget"
)

const (
	maxNotices = 4
	minWidth   = 40
	cellGap    = 1
	// frame border plus the scroll column and its gap
	chromeWidth = 4
)

// Engine is the stepped system the view drives. Manager is only read
// between steps, on the bubbletea goroutine.
type Engine interface {
	Step() error
	Manager() *nav.Manager
}

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type Model struct {
	engine   Engine
	hal      *HAL
	keys     keyMap
	help     help.Model
	input    textinput.Model
	interval time.Duration

	inputActive bool
	notices     []string
	width       int
	err         error
}

// New returns a model stepping engine hz times per second. h must be the
// HAL the engine was built on.
func New(engine Engine, h *HAL, hz int) Model {
	if hz <= 0 {
		hz = 60
	}
	input := textinput.New()
	input.Prompt = ": "
	input.Placeholder = "page:Home, theme:red, back, next, help"
	input.CharLimit = 127

	return Model{
		engine:   engine,
		hal:      h,
		keys:     defaultKeyMap,
		help:     help.New(),
		input:    input,
		interval: time.Second / time.Duration(hz),
		width:    minWidth * 2,
	}
}

// Err is the step error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minWidth)
		m.help.Width = m.width
	case tickMsg:
		m.hal.Advance(time.Time(msg))
		if err := m.engine.Step(); err != nil {
			m.err = err

			return m, tea.Quit
		}
		m.notices = append(m.notices, m.hal.Drain()...)
		if n := len(m.notices); n > maxNotices {
			m.notices = m.notices[n-maxNotices:]
		}

		return m, tick(m.interval)
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputActive {
		switch {
		case key.Matches(msg, m.keys.Submit):
			if line := strings.TrimSpace(m.input.Value()); line != "" {
				m.hal.SendLine(line)
			}
			fallthrough
		case key.Matches(msg, m.keys.Cancel):
			m.input.Reset()
			m.input.Blur()
			m.inputActive = false

			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Command):
		m.inputActive = true
		cmd := m.input.Focus()

		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.hal.Press(hal.KeyUp)
	case key.Matches(msg, m.keys.Down):
		m.hal.Press(hal.KeyDown)
	case key.Matches(msg, m.keys.Left):
		m.hal.Press(hal.KeyLeft)
	case key.Matches(msg, m.keys.Right):
		m.hal.Press(hal.KeyRight)
	case key.Matches(msg, m.keys.Accept):
		m.hal.Press(hal.KeyEnter)
	case key.Matches(msg, m.keys.Back):
		m.hal.Press(hal.KeyEscape)
	}

	return m, nil
}

func (m Model) View() string {
	mgr := m.engine.Manager()
	page := mgr.CurrentPage()
	if page == nil {
		return "no pages\n"
	}
	pal := mgr.Palette()
	st := newStyles(pal)
	inner := m.width - chromeWidth

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		st.title.Render(" "+page.Name()+" "),
		st.base.Render(fmt.Sprintf(" %d/%d  theme:%s", mgr.CurrentIndex()+1, len(mgr.Pages()), pal.Name)),
	)

	focus := mgr.Focus()
	rows := make([]string, 0, grid.VisibleRows)
	for v := 0; v < grid.VisibleRows; v++ {
		rows = append(rows, renderRow(page, page.ScrollOffset()+v, focus, st, inner))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(rows, "\n"),
		st.base.Render(" "),
		scrollColumn(page.ScrollOffset(), st),
	)

	var b strings.Builder
	b.WriteString(st.frame.Render(lipgloss.JoinVertical(lipgloss.Left, header, body)))
	b.WriteByte('\n')
	for _, n := range m.notices {
		b.WriteString(st.notice.Render(runewidth.Truncate(n, m.width, "…")))
		b.WriteByte('\n')
	}
	if m.inputActive {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.navHelp()))
	}
	b.WriteByte('\n')

	return b.String()
}

func renderRow(page *grid.Page, r int, focus grid.Focus, st styles, width int) string {
	if r >= grid.TotalRows {
		return st.base.Render(strings.Repeat(" ", width))
	}
	if page.IsFullRow(r) {
		return renderCell(page.Widget(r, 0), focus == grid.Focus{Row: r, Col: 0}, st, width)
	}

	cellW := (width - (grid.Cols-1)*cellGap) / grid.Cols
	parts := make([]string, 0, 2*grid.Cols)
	for c := 0; c < grid.Cols; c++ {
		if c > 0 {
			parts = append(parts, st.base.Render(strings.Repeat(" ", cellGap)))
		}
		parts = append(parts, renderCell(page.Widget(r, c), focus == grid.Focus{Row: r, Col: c}, st, cellW))
	}
	used := grid.Cols*cellW + (grid.Cols-1)*cellGap
	if used < width {
		parts = append(parts, st.base.Render(strings.Repeat(" ", width-used)))
	}

	return strings.Join(parts, "")
}

func renderCell(w *widget.Widget, focused bool, st styles, width int) string {
	if w == nil {
		return st.base.Render(strings.Repeat(" ", width))
	}

	style := st.label
	text := w.Text()
	centered := true
	switch w.Kind() {
	case widget.KindLabel:
		if focused {
			style = st.labelFocus
		}
	case widget.KindButton:
		text = "[ " + text + " ]"
		style = st.button
		if focused {
			style = st.buttonFocus
		}
	case widget.KindRadio:
		mark := "( ) "
		if w.Selected() {
			mark = "(•) "
		}
		text, centered = mark+text, false
		if focused {
			style = st.controlFocus
		}
	case widget.KindCheckBox:
		mark := "[ ] "
		if w.Checked() {
			mark = "[x] "
		}
		text, centered = mark+text, false
		if focused {
			style = st.controlFocus
		}
	case widget.KindLink:
		text += " ›"
		style = st.link
		if focused {
			style = st.linkFocus
		}
	}

	return style.Render(pad(text, width, centered))
}

// pad truncates s to width display columns and fills the rest with spaces.
func pad(s string, width int, centered bool) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	if centered {
		if left := (width - runewidth.StringWidth(s)) / 2; left > 0 {
			s = strings.Repeat(" ", left) + s
		}
	}

	return runewidth.FillRight(s, width)
}

func scrollColumn(scroll int, st styles) string {
	pos, size := grid.ScrollThumb(grid.VisibleRows, scroll)
	lines := make([]string, grid.VisibleRows)
	for i := range lines {
		if i >= pos && i < pos+size {
			lines[i] = st.thumb.Render("█")
		} else {
			lines[i] = st.track.Render("│")
		}
	}

	return strings.Join(lines, "\n")
}
