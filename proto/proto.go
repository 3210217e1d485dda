// Package proto defines the IPC message kinds exchanged between tasks and
// their payload encodings.
package proto

import "pagegrid/ui/nav"

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	// MsgLogLine carries one log line (UTF-8, no trailing newline).
	MsgLogLine Kind = iota + 1
	// MsgInput carries one navigation command as a single byte.
	MsgInput
	// MsgCommandLine carries one command line received over serial.
	MsgCommandLine
	// MsgSerialWrite carries one outbound serial line.
	MsgSerialWrite
	// MsgTheme carries a palette name to apply.
	MsgTheme
)

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgInput:
		return "input"
	case MsgCommandLine:
		return "command_line"
	case MsgSerialWrite:
		return "serial_write"
	case MsgTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// InputPayload encodes a MsgInput payload.
func InputPayload(cmd nav.Command) []byte {
	return []byte{byte(cmd)}
}

// DecodeInput decodes a MsgInput payload.
func DecodeInput(b []byte) (nav.Command, bool) {
	if len(b) != 1 {
		return 0, false
	}
	cmd := nav.Command(b[0])
	if cmd < nav.CmdUp || cmd > nav.CmdConfirm {
		return 0, false
	}
	return cmd, true
}

// LinePayload encodes a line for MsgLogLine, MsgCommandLine, MsgSerialWrite
// or MsgTheme, truncating at max bytes on a UTF-8 boundary.
func LinePayload(s string, max int) []byte {
	if len(s) <= max {
		return []byte(s)
	}
	cut := max
	for cut > 0 && !utf8RuneStart(s[cut]) {
		cut--
	}
	return []byte(s[:cut])
}

func utf8RuneStart(b byte) bool { return b&0xC0 != 0x80 }
