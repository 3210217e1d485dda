// Package command implements the host line protocol:
//
//	page:<Name>   navigate to a page
//	theme:<name>  switch palette (red, blue, green, default)
//	back, next    cycle pages
//	help          print usage
//
// Matching is exact and case-sensitive after trimming surrounding whitespace.
package command

import (
	"errors"
	"strings"

	"pagegrid/ui/nav"
)

var ErrUnknownCommand = errors.New("unknown command")

// Kind identifies a parsed command.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPage
	KindTheme
	KindBack
	KindNext
	KindHelp
)

// Command is a parsed protocol line.
type Command struct {
	Kind Kind
	Arg  string
}

const (
	pagePrefix  = "page:"
	themePrefix = "theme:"
)

var themeNames = map[string]bool{
	"red":     true,
	"blue":    true,
	"green":   true,
	"default": true,
}

// HelpLines is the fixed usage listing.
var HelpLines = []string{
	"=== Serial Commands ===",
	"page:PageName        - Navigate to page",
	"theme:red/blue/green/default - Change theme",
	"back                 - Go to previous page",
	"next                 - Go to next page",
	"help                 - Show this help",
	"=======================",
}

// UnknownNotice is emitted for lines that match no command.
const UnknownNotice = "Unknown command. Type 'help' for available commands."

// Parse classifies one line.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, pagePrefix):
		return Command{Kind: KindPage, Arg: line[len(pagePrefix):]}, nil
	case strings.HasPrefix(line, themePrefix) && themeNames[line[len(themePrefix):]]:
		return Command{Kind: KindTheme, Arg: line[len(themePrefix):]}, nil
	case line == "back":
		return Command{Kind: KindBack}, nil
	case line == "next":
		return Command{Kind: KindNext}, nil
	case line == "help":
		return Command{Kind: KindHelp}, nil
	default:
		return Command{}, ErrUnknownCommand
	}
}

// Writer receives reply lines.
type Writer interface {
	WriteLineString(s string)
}

// Execute parses line and applies it to m. Replies go to out; navigation
// notices go to the manager's own logger. It reports whether m changed.
func Execute(m *nav.Manager, line string, out Writer) bool {
	cmd, err := Parse(line)
	if err != nil {
		out.WriteLineString(UnknownNotice)
		return false
	}

	switch cmd.Kind {
	case KindPage:
		return m.NavigateToPage(cmd.Arg) == nil
	case KindTheme:
		return m.SetTheme(cmd.Arg) == nil
	case KindBack:
		return m.GoBack()
	case KindNext:
		return m.GoNext()
	case KindHelp:
		for _, l := range HelpLines {
			out.WriteLineString(l)
		}
		return false
	default:
		out.WriteLineString(UnknownNotice)
		return false
	}
}
