package nav

import (
	"strings"

	"pagegrid/ui/grid"
	"pagegrid/ui/widget"
)

// Command is one discrete input from the 5-way switch.
type Command uint8

const (
	CmdUp Command = iota + 1
	CmdDown
	CmdLeft
	CmdRight
	CmdConfirm
)

func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Direction maps a directional command to a grid direction.
func (c Command) Direction() (grid.Direction, bool) {
	switch c {
	case CmdUp:
		return grid.Up, true
	case CmdDown:
		return grid.Down, true
	case CmdLeft:
		return grid.Left, true
	case CmdRight:
		return grid.Right, true
	default:
		return 0, false
	}
}

// Apply runs one input command to completion and reports whether any visible
// state changed.
func (m *Manager) Apply(cmd Command) bool {
	if cmd == CmdConfirm {
		return m.Activate()
	}
	d, ok := cmd.Direction()
	if !ok {
		return false
	}
	return m.Move(d)
}

// Move moves the focus on the current page.
func (m *Manager) Move(d grid.Direction) bool {
	p := m.CurrentPage()
	if p == nil {
		return false
	}
	f, ok := p.Move(d, m.focus)
	if !ok {
		return false
	}
	m.focus = f
	return true
}

// Activate applies the focused widget's confirm behavior.
func (m *Manager) Activate() bool {
	p := m.CurrentPage()
	if p == nil {
		return false
	}
	w := p.Widget(m.focus.Row, m.focus.Col)
	if w == nil {
		return false
	}

	switch w.Kind() {
	case widget.KindLabel:
		return false
	case widget.KindButton:
		w.Press()
		return true
	case widget.KindRadio:
		p.SelectRadioInRow(m.focus.Row, w)
		return true
	case widget.KindCheckBox:
		w.Toggle()
		return true
	case widget.KindLink:
		return m.FollowRoute(w.Route())
	default:
		return false
	}
}

// FollowRoute resolves a link route: "/back", "/next", or a page name with an
// optional leading slash.
func (m *Manager) FollowRoute(route string) bool {
	switch route {
	case widget.RouteBack:
		return m.GoBack()
	case widget.RouteNext:
		return m.GoNext()
	default:
		return m.NavigateToPage(strings.TrimPrefix(route, "/")) == nil
	}
}
