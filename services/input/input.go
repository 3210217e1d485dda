// Package input turns key events into navigation commands for the UI task.
package input

import (
	"pagegrid/hal"
	"pagegrid/kernel"
	"pagegrid/proto"
	"pagegrid/ui/nav"
)

// Default settle delays in ticks (1 tick = 1ms).
const (
	DefaultSettle        = 150
	DefaultConfirmSettle = 200
)

// Config sets the settle delays. Zero values use the defaults.
type Config struct {
	Settle        uint64
	ConfirmSettle uint64
}

// Service polls the keyboard once per tick and forwards one command per
// settle window. Presses that arrive while settling are dropped, except the
// first, which is delivered when the window closes.
type Service struct {
	events <-chan hal.KeyEvent
	out    kernel.Capability
	cfg    Config

	readyAt uint64
	pending hal.KeyCode
}

// New creates an input service that sends MsgInput and MsgCommandLine to out.
func New(kbd hal.Keyboard, out kernel.Capability, cfg Config) *Service {
	if cfg.Settle == 0 {
		cfg.Settle = DefaultSettle
	}
	if cfg.ConfirmSettle == 0 {
		cfg.ConfirmSettle = DefaultConfirmSettle
	}
	s := &Service{out: out, cfg: cfg}
	if kbd != nil {
		s.events = kbd.Events()
	}
	return s
}

func (s *Service) Step(ctx *kernel.Context) {
	s.poll()

	now := ctx.NowTick()
	if now < s.readyAt {
		ctx.SleepUntil(s.readyAt)
		return
	}
	if s.pending == hal.KeyUnknown {
		ctx.BlockOnTick()
		return
	}

	code := s.pending
	var res kernel.SendResult
	var settle uint64
	if code == hal.KeyEscape {
		res = ctx.SendTo(s.out, uint16(proto.MsgCommandLine), []byte("back"))
		settle = s.cfg.Settle
	} else {
		cmd := commandFor(code)
		res = ctx.SendTo(s.out, uint16(proto.MsgInput), proto.InputPayload(cmd))
		settle = s.cfg.Settle
		if cmd == nav.CmdConfirm {
			settle = s.cfg.ConfirmSettle
		}
	}
	if res == kernel.SendErrQueueFull {
		ctx.BlockOnTick()
		return
	}
	s.pending = hal.KeyUnknown
	s.readyAt = now + settle
	ctx.SleepUntil(s.readyAt)
}

func (s *Service) poll() {
	if s.events == nil {
		return
	}
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return
			}
			if !ev.Press || s.pending != hal.KeyUnknown {
				continue
			}
			if ev.Code == hal.KeyEscape || commandFor(ev.Code) != 0 {
				s.pending = ev.Code
			}
		default:
			return
		}
	}
}

func commandFor(code hal.KeyCode) nav.Command {
	switch code {
	case hal.KeyUp:
		return nav.CmdUp
	case hal.KeyDown:
		return nav.CmdDown
	case hal.KeyLeft:
		return nav.CmdLeft
	case hal.KeyRight:
		return nav.CmdRight
	case hal.KeyEnter:
		return nav.CmdConfirm
	default:
		return 0
	}
}
