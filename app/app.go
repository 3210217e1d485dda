package app

import (
	_ "embed"
	"errors"
	"fmt"

	"pagegrid/hal"
	"pagegrid/internal/buildinfo"
	"pagegrid/kernel"
	"pagegrid/proto"
	"pagegrid/services/input"
	"pagegrid/services/logger"
	"pagegrid/services/serial"
	"pagegrid/services/ui"
	"pagegrid/ui/layout"
	"pagegrid/ui/nav"
	"pagegrid/ui/theme"
)

//go:embed pages.yaml
var DefaultLayout []byte

// stepBudget bounds task steps per host frame.
const stepBudget = 64

// Config selects the page set and startup state.
type Config struct {
	// Layout is a YAML page document; nil uses DefaultLayout.
	Layout []byte
	// Theme is the initial palette name; empty keeps each page's own.
	Theme string
	// StartPage is the page shown first; empty means the first page.
	StartPage string

	// Settle and ConfirmSettle are input settle delays in ticks.
	Settle        uint64
	ConfirmSettle uint64

	// Themes delivers palette names from outside the kernel (config reload).
	Themes <-chan string
}

// System is a wired kernel with its navigation context.
type System struct {
	k *kernel.Kernel
	m *nav.Manager

	ticks  <-chan uint64
	themes <-chan string
	uiEP   kernel.Capability
}

// Build loads the layout, registers the pages and starts the tasks.
func Build(h hal.HAL, cfg Config) (*System, error) {
	data := cfg.Layout
	if data == nil {
		data = DefaultLayout
	}
	doc, err := layout.Parse(data)
	if err != nil {
		return nil, err
	}

	box := &ui.Outbox{}
	pages, err := doc.Build(Actions(h, box))
	if err != nil {
		return nil, err
	}
	m := nav.New(nav.WithLogger(box))
	if err := layout.Install(m, pages); err != nil {
		return nil, err
	}
	if cfg.Theme != "" {
		pal, err := theme.Lookup(cfg.Theme)
		if err != nil {
			return nil, err
		}
		m.SetPalette(pal)
	}
	if cfg.StartPage != "" {
		if err := m.NavigateToPage(cfg.StartPage); err != nil {
			return nil, err
		}
	}

	k := kernel.New()
	installPanicHandler(k, h)

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	uiEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	serialEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	var canvas hal.Canvas
	if d := h.Display(); d != nil {
		canvas = d.Canvas()
	}
	var kbd hal.Keyboard
	if in := h.Input(); in != nil {
		kbd = in.Keyboard()
	}

	tasks := []kernel.Task{
		logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)),
		ui.New(ui.Config{
			Manager: m,
			Outbox:  box,
			Canvas:  canvas,
			EP:      uiEP.Restrict(kernel.RightRecv),
			Serial:  serialEP.Restrict(kernel.RightSend),
			Log:     logEP.Restrict(kernel.RightSend),
		}),
		input.New(kbd, uiEP.Restrict(kernel.RightSend), input.Config{
			Settle:        cfg.Settle,
			ConfirmSettle: cfg.ConfirmSettle,
		}),
		serial.New(h.Serial(), serialEP.Restrict(kernel.RightRecv), uiEP.Restrict(kernel.RightSend)),
	}
	for _, t := range tasks {
		if _, ok := k.AddTask(t); !ok {
			return nil, fmt.Errorf("app: task table full")
		}
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("pagegrid %s: %d pages, start %s", buildinfo.Short(), len(pages), m.CurrentPageName()))
	}

	s := &System{k: k, m: m, themes: cfg.Themes, uiEP: uiEP.Restrict(kernel.RightSend)}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}
	return s, nil
}

// Manager returns the navigation context. It must only be touched from the
// goroutine that calls Step.
func (s *System) Manager() *nav.Manager { return s.m }

// Step drains pending ticks and bridged events, then runs tasks until idle.
func (s *System) Step() error {
	s.drainTicks()
	s.drainThemes()
	s.k.RunUntilIdle(stepBudget)
	return nil
}

func (s *System) drainTicks() {
	if s.ticks == nil {
		s.k.Tick()
		return
	}
	for {
		select {
		case seq, ok := <-s.ticks:
			if !ok {
				s.ticks = nil
				return
			}
			s.k.TickTo(seq)
		default:
			return
		}
	}
}

func (s *System) drainThemes() {
	if s.themes == nil {
		return
	}
	for {
		select {
		case name, ok := <-s.themes:
			if !ok {
				s.themes = nil
				return
			}
			s.k.Post(s.uiEP, uint16(proto.MsgTheme), proto.LinePayload(name, kernel.MaxMessageBytes))
		default:
			return
		}
	}
}

// New builds the system and returns its per-frame step function for the
// host runners.
func New(h hal.HAL, cfg Config) func() error {
	s, err := Build(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.Step
}

// Run builds the default system and steps it on every HAL tick
// (TinyGo/native entrypoint). It never returns.
func Run(h hal.HAL) {
	if err := run(h, Config{}); err != nil {
		h.Logger().WriteLineString("pagegrid: " + err.Error())
	}
	select {}
}

var errNoTicks = errors.New("no tick source")

// run steps the system until the tick channel closes.
func run(h hal.HAL, cfg Config) error {
	t := h.Time()
	if t == nil {
		return errNoTicks
	}
	s, err := Build(h, cfg)
	if err != nil {
		return err
	}
	for seq := range t.Ticks() {
		s.k.TickTo(seq)
		s.drainThemes()
		s.k.RunUntilIdle(stepBudget)
	}
	return nil
}
