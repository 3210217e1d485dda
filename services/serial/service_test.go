package serial

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"pagegrid/kernel"
	"pagegrid/proto"
	"pagegrid/ui/command"
)

// port is a scripted hal.Serial: each Read returns the next chunk.
type port struct {
	chunks []string
	err    error
	out    bytes.Buffer
}

func (p *port) Read(b []byte) (int, error) {
	if len(p.chunks) == 0 {
		return 0, p.err
	}
	n := copy(b, p.chunks[0])
	p.chunks[0] = p.chunks[0][n:]
	if p.chunks[0] == "" {
		p.chunks = p.chunks[1:]
	}
	return n, nil
}

func (p *port) Write(b []byte) (int, error) { return p.out.Write(b) }

type sink struct {
	ep  kernel.Capability
	got []string
}

func (s *sink) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(s.ep)
		if !ok {
			break
		}
		if proto.Kind(msg.Kind) == proto.MsgCommandLine {
			s.got = append(s.got, string(msg.Payload()))
		}
	}
	ctx.BlockOn(s.ep)
}

func run(k *kernel.Kernel, ticks uint64) {
	for tick := uint64(0); tick < ticks; tick++ {
		k.TickTo(tick)
		k.RunUntilIdle(50)
	}
}

func TestAssemblesLines(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	p := &port{chunks: []string{"pa", "ge:Settings\r", "\nhelp\n", "  back  \n", "next"}}
	s := &sink{ep: out.Restrict(kernel.RightRecv)}
	k.AddTask(New(p, ep.Restrict(kernel.RightRecv), out.Restrict(kernel.RightSend)))
	k.AddTask(s)

	run(k, 5)

	want := []string{"page:Settings", "help", "  back  "}
	if strings.Join(s.got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, s.got)
	}
}

func TestEOFFlushesPartialLine(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	p := &port{chunks: []string{"next"}, err: io.EOF}
	s := &sink{ep: out.Restrict(kernel.RightRecv)}
	k.AddTask(New(p, ep.Restrict(kernel.RightRecv), out.Restrict(kernel.RightSend)))
	k.AddTask(s)

	run(k, 3)

	if len(s.got) != 1 || s.got[0] != "next" {
		t.Fatalf("expected [next], got %q", s.got)
	}
}

func TestOverlongLineDiscarded(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	p := &port{chunks: []string{
		strings.Repeat("x", maxLine) + "next\n",
		strings.Repeat("y", maxLine+40),
		"back\nhelp\n",
	}}
	s := &sink{ep: out.Restrict(kernel.RightRecv)}
	k.AddTask(New(p, ep.Restrict(kernel.RightRecv), out.Restrict(kernel.RightSend)))
	k.AddTask(s)

	run(k, 5)

	if len(s.got) != 1 || s.got[0] != "help" {
		t.Fatalf("expected only [help] forwarded, got %q", s.got)
	}
	want := strings.Repeat(command.UnknownNotice+"\r\n", 2)
	if got := p.out.String(); got != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestLineAtLimitForwarded(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	line := strings.Repeat("a", maxLine)
	p := &port{chunks: []string{line + "\r\n"}}
	s := &sink{ep: out.Restrict(kernel.RightRecv)}
	k.AddTask(New(p, ep.Restrict(kernel.RightRecv), out.Restrict(kernel.RightSend)))
	k.AddTask(s)

	run(k, 3)

	if len(s.got) != 1 || s.got[0] != line {
		t.Fatalf("expected one %d-byte line, got %d lines", maxLine, len(s.got))
	}
}

func TestWritesOutboundLines(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	out := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	p := &port{}
	k.AddTask(New(p, ep.Restrict(kernel.RightRecv), out.Restrict(kernel.RightSend)))
	k.AddTask(taskFunc(func(ctx *kernel.Context) {
		ctx.SendTo(ep, uint16(proto.MsgSerialWrite), []byte("Navigated to page: Home"))
		ctx.SendTo(ep, uint16(proto.MsgLogLine), []byte("ignored"))
		ctx.SleepUntil(1 << 20)
	}))

	run(k, 3)

	if got := p.out.String(); got != "Navigated to page: Home\r\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

type taskFunc func(*kernel.Context)

func (f taskFunc) Step(ctx *kernel.Context) { f(ctx) }
