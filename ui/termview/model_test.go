package termview_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"pagegrid/app"
	"pagegrid/ui/grid"
	"pagegrid/ui/termview"
)

type rig struct {
	t     *testing.T
	h     *termview.HAL
	sys   *app.System
	model tea.Model
	now   time.Time
}

func newRig(t *testing.T) *rig {
	t.Helper()
	h := termview.NewHAL()
	sys, err := app.Build(h, app.Config{Settle: 1, ConfirmSettle: 1})
	require.NoError(t, err)

	return &rig{t: t, h: h, sys: sys, model: termview.New(sys, h, 60), now: time.Unix(1000, 0)}
}

func (r *rig) send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.model, cmd = r.model.Update(msg)
	return cmd
}

// ticks advances the wall clock 5ms per frame.
func (r *rig) ticks(n int) {
	for i := 0; i < n; i++ {
		r.now = r.now.Add(5 * time.Millisecond)
		require.NotNil(r.t, r.sendTick())
	}
}

func (r *rig) sendTick() tea.Cmd {
	return r.send(termview.TickMsgForTest(r.now))
}

func (r *rig) typeLine(s string) {
	r.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":")})
	r.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	r.send(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestViewShowsPage(t *testing.T) {
	r := newRig(t)
	r.ticks(2)

	view := r.model.View()
	require.Contains(t, view, "Home")
	require.Contains(t, view, "1/4")
	require.Contains(t, view, "Main Menu")
	require.Contains(t, view, "[ LED ]")
	require.Contains(t, view, "Settings ›")
	require.NotContains(t, view, "Row 6")
}

func TestArrowKeysMoveFocus(t *testing.T) {
	r := newRig(t)
	r.ticks(1)

	r.send(tea.KeyMsg{Type: tea.KeyDown})
	r.ticks(3)
	require.Equal(t, grid.Focus{Row: 1, Col: 0}, r.sys.Manager().Focus())

	r.send(tea.KeyMsg{Type: tea.KeyRight})
	r.ticks(3)
	require.Equal(t, grid.Focus{Row: 1, Col: 1}, r.sys.Manager().Focus())

	r.send(tea.KeyMsg{Type: tea.KeyEnter})
	r.ticks(3)
	require.Contains(t, r.model.View(), "Hello!")
}

func TestButtonTogglesLED(t *testing.T) {
	r := newRig(t)
	r.ticks(1)

	r.send(tea.KeyMsg{Type: tea.KeyDown})
	r.ticks(3)
	r.send(tea.KeyMsg{Type: tea.KeyEnter})
	r.ticks(3)
	require.True(t, r.h.LEDOn())
	require.Contains(t, r.model.View(), "LED: on")
}

func TestCommandLine(t *testing.T) {
	r := newRig(t)
	r.ticks(1)

	r.typeLine("page:About")
	r.ticks(3)
	require.Equal(t, "About", r.sys.Manager().CurrentPageName())
	require.Contains(t, r.model.View(), "Navigated to page: About")

	r.typeLine("theme:green")
	r.ticks(3)
	require.Equal(t, "green", r.sys.Manager().Palette().Name)
	require.Contains(t, r.model.View(), "theme:green")

	// q is text while the prompt is open.
	r.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":")})
	cmd := r.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		require.False(t, quit)
	}
	r.send(tea.KeyMsg{Type: tea.KeyEsc})
}

func TestEscapeGoesBack(t *testing.T) {
	r := newRig(t)
	r.ticks(1)

	r.send(tea.KeyMsg{Type: tea.KeyEsc})
	r.ticks(3)
	require.Equal(t, "About", r.sys.Manager().CurrentPageName())
}

func TestQuit(t *testing.T) {
	r := newRig(t)
	cmd := r.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
