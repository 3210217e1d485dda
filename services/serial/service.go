package serial

import (
	"pagegrid/hal"
	"pagegrid/kernel"
	"pagegrid/proto"
	"pagegrid/ui/command"
)

// maxLine bounds an inbound line. A longer line is discarded up to its
// newline and answered with the unknown-command notice.
const maxLine = kernel.MaxMessageBytes

// Service bridges hal.Serial and the kernel: inbound bytes become
// MsgCommandLine messages, MsgSerialWrite messages become output lines.
type Service struct {
	serial hal.Serial
	ep     kernel.Capability
	out    kernel.Capability

	rxOff    bool
	overflow bool
	buf      []byte
	lines []string
	rd    [64]byte
}

// New creates a serial service. ep receives MsgSerialWrite; out receives
// assembled command lines.
func New(serial hal.Serial, ep, out kernel.Capability) *Service {
	return &Service{serial: serial, ep: ep, out: out, rxOff: serial == nil}
}

func (s *Service) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(s.ep)
		if !ok {
			break
		}
		if proto.Kind(msg.Kind) != proto.MsgSerialWrite || s.serial == nil {
			continue
		}
		line := make([]byte, 0, msg.Len+2)
		line = append(line, msg.Payload()...)
		line = append(line, '\r', '\n')
		_, _ = s.serial.Write(line)
	}

	s.read()
	s.flush(ctx)

	if s.rxOff && len(s.lines) == 0 {
		ctx.BlockOn(s.ep)
		return
	}
	ctx.BlockOnTick()
}

func (s *Service) read() {
	if s.rxOff {
		return
	}
	for {
		n, err := s.serial.Read(s.rd[:])
		s.feed(s.rd[:n])
		if err != nil {
			s.rxOff = true
			if s.overflow || len(s.buf) > 0 {
				s.endLine()
			}
			return
		}
		if n == 0 {
			return
		}
	}
}

func (s *Service) feed(b []byte) {
	for _, c := range b {
		switch c {
		case '\n':
			s.endLine()
		case '\r':
		default:
			if s.overflow {
				continue
			}
			if len(s.buf) >= maxLine {
				s.overflow = true
				s.buf = s.buf[:0]
				continue
			}
			s.buf = append(s.buf, c)
		}
	}
}

func (s *Service) endLine() {
	if s.overflow {
		s.overflow = false
		if s.serial != nil {
			_, _ = s.serial.Write([]byte(command.UnknownNotice + "\r\n"))
		}
		return
	}
	s.lines = append(s.lines, string(s.buf))
	s.buf = s.buf[:0]
}

func (s *Service) flush(ctx *kernel.Context) {
	for len(s.lines) > 0 {
		res := ctx.SendTo(s.out, uint16(proto.MsgCommandLine), []byte(s.lines[0]))
		if res == kernel.SendErrQueueFull {
			return
		}
		s.lines = s.lines[1:]
	}
}
