package nav

import (
	"errors"
	"fmt"
	"strings"

	"pagegrid/ui/grid"
	"pagegrid/ui/theme"

	"github.com/sahilm/fuzzy"
)

// MaxPages bounds the page registry.
const MaxPages = 10

var (
	ErrPagesFull     = errors.New("page registry full")
	ErrDuplicatePage = errors.New("duplicate page name")
	ErrPageNotFound  = errors.New("page not found")
	ErrNilPage       = errors.New("nil page")
)

// Logger receives one-line notices. hal.Logger satisfies it.
type Logger interface {
	WriteLineString(s string)
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the notice sink.
func WithLogger(l Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithPalette sets the palette used by pages that carry none.
func WithPalette(p *theme.Palette) Option {
	return func(m *Manager) {
		if p != nil {
			m.palette = p
		}
	}
}

// Manager is the navigation context: the ordered page registry, the current
// page and the single focus cursor. It is not safe for concurrent use; all
// mutation happens from one tick loop.
type Manager struct {
	pages   []*grid.Page
	current int
	focus   grid.Focus
	palette *theme.Palette
	log     Logger
}

// New returns an empty manager using the default palette.
func New(opts ...Option) *Manager {
	m := &Manager{palette: &theme.Default, log: nopLogger{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddPage appends p to the registry. The first page registered becomes
// current and receives the initial focus.
func (m *Manager) AddPage(p *grid.Page) error {
	if p == nil {
		return ErrNilPage
	}
	if len(m.pages) >= MaxPages {
		return fmt.Errorf("%w: %d pages", ErrPagesFull, MaxPages)
	}
	if m.index(p.Name()) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicatePage, p.Name())
	}
	m.pages = append(m.pages, p)
	if len(m.pages) == 1 {
		m.current = 0
		m.reanchor()
	}
	return nil
}

// Pages returns the registered pages in order.
func (m *Manager) Pages() []*grid.Page { return m.pages[:len(m.pages):len(m.pages)] }

// PageNames returns the registered page names in order.
func (m *Manager) PageNames() []string {
	names := make([]string, len(m.pages))
	for i, p := range m.pages {
		names[i] = p.Name()
	}
	return names
}

// CurrentPage returns the current page, or nil when none is registered.
func (m *Manager) CurrentPage() *grid.Page {
	if m.current < 0 || m.current >= len(m.pages) {
		return nil
	}
	return m.pages[m.current]
}

// CurrentPageName returns the current page name or "Unknown".
func (m *Manager) CurrentPageName() string {
	if p := m.CurrentPage(); p != nil {
		return p.Name()
	}
	return "Unknown"
}

func (m *Manager) CurrentIndex() int { return m.current }
func (m *Manager) Focus() grid.Focus { return m.focus }

// NavigateToPage switches to the page with the exact name and re-anchors the
// focus. On a miss nothing changes and a notice is emitted.
func (m *Manager) NavigateToPage(name string) error {
	i := m.index(name)
	if i < 0 {
		line := "Page not found: " + name
		if hints := m.suggest(name); len(hints) > 0 {
			line += " (did you mean: " + strings.Join(hints, ", ") + "?)"
		}
		m.log.WriteLineString(line)
		return fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	m.current = i
	m.reanchor()
	m.log.WriteLineString("Navigated to page: " + name)
	return nil
}

// GoBack moves to the previous page, wrapping around. It is a no-op with
// fewer than two pages.
func (m *Manager) GoBack() bool {
	n := len(m.pages)
	if n <= 1 {
		return false
	}
	m.current = (m.current + n - 1) % n
	m.reanchor()
	m.log.WriteLineString("Went back to page: " + m.CurrentPageName())
	return true
}

// GoNext moves to the next page, wrapping around. It is a no-op with fewer
// than two pages.
func (m *Manager) GoNext() bool {
	n := len(m.pages)
	if n <= 1 {
		return false
	}
	m.current = (m.current + 1) % n
	m.reanchor()
	m.log.WriteLineString("Went forward to page: " + m.CurrentPageName())
	return true
}

// reanchor puts the focus on the first occupied row's leftmost widget and
// scrolls it into view.
func (m *Manager) reanchor() {
	p := m.CurrentPage()
	if p == nil {
		m.focus = grid.Focus{}
		return
	}
	m.focus = p.Anchor()
	p.Reveal(m.focus)
}

// Palette returns the palette of the current page, falling back to the
// manager palette.
func (m *Manager) Palette() *theme.Palette {
	if p := m.CurrentPage(); p != nil && p.Palette() != nil {
		return p.Palette()
	}
	return m.palette
}

// SetPalette broadcasts pal to every registered page.
func (m *Manager) SetPalette(pal *theme.Palette) {
	if pal == nil {
		return
	}
	m.palette = pal
	for _, p := range m.pages {
		p.SetPalette(pal)
	}
}

// SetTheme broadcasts the built-in palette called name.
func (m *Manager) SetTheme(name string) error {
	pal, err := theme.Lookup(name)
	if err != nil {
		return err
	}
	m.SetPalette(pal)
	m.log.WriteLineString("Theme: " + name)
	return nil
}

func (m *Manager) index(name string) int {
	for i, p := range m.pages {
		if p.Name() == name {
			return i
		}
	}
	return -1
}

func (m *Manager) suggest(name string) []string {
	if name == "" {
		return nil
	}
	matches := fuzzy.Find(name, m.PageNames())
	out := make([]string, 0, 3)
	for _, match := range matches {
		if len(out) == cap(out) {
			break
		}
		out = append(out, match.Str)
	}
	return out
}
