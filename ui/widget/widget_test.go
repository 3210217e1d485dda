package widget_test

import (
	"strings"
	"testing"

	"pagegrid/ui/widget"

	"github.com/stretchr/testify/require"
)

func TestButtonPressInvokesAction(t *testing.T) {
	calls := 0
	b := widget.NewButton("Go", func() { calls++ })
	b.Press()
	b.Press()
	require.Equal(t, 2, calls)

	widget.NewButton("nil", nil).Press()
}

func TestCheckBoxToggle(t *testing.T) {
	cb := widget.NewCheckBox("Sound", false)
	cb.Toggle()
	require.True(t, cb.Checked())
	cb.Toggle()
	require.False(t, cb.Checked())
}

func TestStateOpsIgnoreOtherKinds(t *testing.T) {
	cb := widget.NewCheckBox("x", true)
	cb.Deselect()
	cb.Select()
	require.True(t, cb.Checked())
	require.False(t, cb.Selected())

	r := widget.NewRadio("r", false)
	r.Toggle()
	require.False(t, r.Selected())
	r.Select()
	require.True(t, r.Selected())
	require.False(t, r.Checked())
}

func TestSetTextClampsLabelsAndButtons(t *testing.T) {
	long := strings.Repeat("a", 40)

	l := widget.NewLabel(long)
	require.Len(t, l.Text(), widget.MaxTextLen)

	l.SetText("Ünïcode ok")
	require.Equal(t, "Ünïcode ok", l.Text())

	link := widget.NewLink("About", "/About")
	link.SetText("changed")
	require.Equal(t, "About", link.Text())
	require.Equal(t, "/About", link.Route())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "label", widget.KindLabel.String())
	require.Equal(t, "link", widget.KindLink.String())
	require.Equal(t, "unknown", widget.Kind(0).String())
	require.False(t, widget.NewLabel("x").Interactive())
	require.True(t, widget.NewLink("x", "/y").Interactive())
}
