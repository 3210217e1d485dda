package logger

import (
	"pagegrid/hal"
	"pagegrid/kernel"
	"pagegrid/proto"
)

// Service writes MsgLogLine payloads to the HAL logger.
type Service struct {
	log hal.Logger
	ep  kernel.Capability
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

func (s *Service) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(s.ep)
		if !ok {
			break
		}
		if s.log == nil || proto.Kind(msg.Kind) != proto.MsgLogLine {
			continue
		}
		s.log.WriteLineBytes(msg.Payload())
	}
	ctx.BlockOn(s.ep)
}

// Client sends log lines to the logger service. Lines that do not fit in the
// mailbox are dropped.
type Client struct {
	ep kernel.Capability
}

func NewClient(ep kernel.Capability) Client { return Client{ep: ep} }

// Log sends one line.
func (c Client) Log(ctx *kernel.Context, line string) kernel.SendResult {
	return ctx.SendTo(c.ep, uint16(proto.MsgLogLine), proto.LinePayload(line, kernel.MaxMessageBytes))
}
