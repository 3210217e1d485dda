package ui

import (
	"pagegrid/hal"
	"pagegrid/kernel"
	"pagegrid/proto"
	"pagegrid/services/logger"
	"pagegrid/ui/command"
	"pagegrid/ui/nav"
	"pagegrid/ui/render"
)

// Outbox collects notice lines until the UI task forwards them to the
// serial service. It satisfies nav.Logger and command.Writer.
type Outbox struct {
	lines []string
}

func (o *Outbox) WriteLineString(s string) { o.lines = append(o.lines, s) }

// Len reports the number of queued lines.
func (o *Outbox) Len() int { return len(o.lines) }

// Config wires a UI task.
type Config struct {
	Manager *nav.Manager
	Outbox  *Outbox
	Canvas  hal.Canvas

	// EP receives MsgInput, MsgCommandLine and MsgTheme.
	EP kernel.Capability
	// Serial receives MsgSerialWrite notice lines.
	Serial kernel.Capability
	// Log receives MsgLogLine diagnostics.
	Log kernel.Capability
}

// Service owns the navigation context. It applies at most one event per
// tick and redraws after every change.
type Service struct {
	m   *nav.Manager
	out *Outbox
	r   *render.Renderer

	ep     kernel.Capability
	serial kernel.Capability
	log    logger.Client

	drawn bool
	dirty bool
	fails int
}

func New(cfg Config) *Service {
	s := &Service{
		m:      cfg.Manager,
		out:    cfg.Outbox,
		ep:     cfg.EP,
		serial: cfg.Serial,
		log:    logger.NewClient(cfg.Log),
	}
	if s.out == nil {
		s.out = &Outbox{}
	}
	if cfg.Canvas != nil {
		s.r = render.New(cfg.Canvas)
	}
	return s
}

func (s *Service) Step(ctx *kernel.Context) {
	if !s.drawn {
		s.drawn = true
		s.dirty = true
	}

	msg, ok := ctx.TryRecv(s.ep)
	if ok {
		s.handle(&msg)
	}
	if s.dirty {
		s.redraw(ctx)
	}
	s.flush(ctx)

	if ok || s.out.Len() > 0 {
		ctx.BlockOnTick()
		return
	}
	ctx.BlockOn(s.ep)
}

func (s *Service) handle(msg *kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgInput:
		cmd, ok := proto.DecodeInput(msg.Payload())
		if !ok {
			return
		}
		if s.m.Apply(cmd) {
			s.dirty = true
		}
	case proto.MsgCommandLine:
		if command.Execute(s.m, string(msg.Payload()), s.out) {
			s.dirty = true
		}
	case proto.MsgTheme:
		if err := s.m.SetTheme(string(msg.Payload())); err != nil {
			s.out.WriteLineString(err.Error())
			return
		}
		s.dirty = true
	}
}

func (s *Service) redraw(ctx *kernel.Context) {
	s.dirty = false
	if s.r == nil {
		return
	}
	if err := s.r.Draw(s.m.CurrentPage(), s.m.Focus(), s.m.Palette()); err != nil {
		s.fails++
		if s.fails == 1 {
			s.log.Log(ctx, "ui: draw: "+err.Error())
		}
	}
}

func (s *Service) flush(ctx *kernel.Context) {
	n := 0
	for _, line := range s.out.lines {
		res := ctx.SendTo(s.serial, uint16(proto.MsgSerialWrite), proto.LinePayload(line, kernel.MaxMessageBytes))
		if res == kernel.SendErrQueueFull {
			break
		}
		n++
	}
	s.out.lines = s.out.lines[n:]
}
