package termview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TickMsgForTest(t time.Time) tea.Msg { return tickMsg(t) }
