package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pagegrid/ui/grid"
	"pagegrid/ui/nav"
	"pagegrid/ui/theme"
	"pagegrid/ui/widget"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidLayout = errors.New("invalid layout")
	ErrUnknownAction = errors.New("unknown action")
)

// Document is a set of static page definitions.
//
//	pages:
//	  - name: Home
//	    theme: blue
//	    rows:
//	      - [{kind: label, text: Main Menu}]
//	      - [{kind: button, text: LED, action: toggle_led}, ~, {kind: link, text: Next, route: /next}]
//
// Row index is grid row; a null cell is empty.
type Document struct {
	Pages []PageSpec `yaml:"pages"`
}

// PageSpec describes one page.
type PageSpec struct {
	Name  string        `yaml:"name"`
	Theme string        `yaml:"theme,omitempty"`
	Rows  [][]*CellSpec `yaml:"rows"`
}

// CellSpec describes one widget.
type CellSpec struct {
	Kind     string `yaml:"kind"`
	Text     string `yaml:"text"`
	Route    string `yaml:"route,omitempty"`
	Action   string `yaml:"action,omitempty"`
	Selected bool   `yaml:"selected,omitempty"`
	Checked  bool   `yaml:"checked,omitempty"`
}

// Actions binds button action names to callbacks.
type Actions map[string]func()

// Parse decodes a YAML layout.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &doc, nil
}

// Load reads and decodes a YAML layout file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Build validates the document and constructs its pages, binding button
// actions from actions.
func (d *Document) Build(actions Actions) ([]*grid.Page, error) {
	if len(d.Pages) == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrInvalidLayout)
	}
	if len(d.Pages) > nav.MaxPages {
		return nil, fmt.Errorf("%w: %d pages, max %d", ErrInvalidLayout, len(d.Pages), nav.MaxPages)
	}

	names := make(map[string]bool, len(d.Pages))
	for _, ps := range d.Pages {
		if ps.Name == "" {
			return nil, fmt.Errorf("%w: page without name", ErrInvalidLayout)
		}
		if names[ps.Name] {
			return nil, fmt.Errorf("%w: duplicate page %q", ErrInvalidLayout, ps.Name)
		}
		names[ps.Name] = true
	}

	pages := make([]*grid.Page, 0, len(d.Pages))
	for _, ps := range d.Pages {
		p, err := ps.build(actions, names)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

func (ps *PageSpec) build(actions Actions, names map[string]bool) (*grid.Page, error) {
	var pal *theme.Palette
	if ps.Theme != "" {
		p, err := theme.Lookup(ps.Theme)
		if err != nil {
			return nil, fmt.Errorf("%w: page %q: %w", ErrInvalidLayout, ps.Name, err)
		}
		pal = p
	}
	if len(ps.Rows) > grid.TotalRows {
		return nil, fmt.Errorf("%w: page %q has %d rows, max %d", ErrInvalidLayout, ps.Name, len(ps.Rows), grid.TotalRows)
	}

	var cells grid.Cells
	for r, row := range ps.Rows {
		if len(row) > grid.Cols {
			return nil, fmt.Errorf("%w: page %q row %d has %d cells, max %d", ErrInvalidLayout, ps.Name, r, len(row), grid.Cols)
		}
		for c, cs := range row {
			if cs == nil {
				continue
			}
			w, err := cs.widget(actions, names)
			if err != nil {
				return nil, fmt.Errorf("page %q cell (%d,%d): %w", ps.Name, r, c, err)
			}
			cells[r][c] = w
		}
	}
	return grid.New(ps.Name, cells, pal), nil
}

func (cs *CellSpec) widget(actions Actions, names map[string]bool) (*widget.Widget, error) {
	switch cs.Kind {
	case "label":
		return widget.NewLabel(cs.Text), nil
	case "button":
		var fn func()
		if cs.Action != "" {
			fn = actions[cs.Action]
			if fn == nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownAction, cs.Action)
			}
		}
		return widget.NewButton(cs.Text, fn), nil
	case "radio":
		return widget.NewRadio(cs.Text, cs.Selected), nil
	case "checkbox":
		return widget.NewCheckBox(cs.Text, cs.Checked), nil
	case "link":
		switch cs.Route {
		case "":
			return nil, fmt.Errorf("%w: link %q without route", ErrInvalidLayout, cs.Text)
		case widget.RouteBack, widget.RouteNext:
		default:
			if !names[strings.TrimPrefix(cs.Route, "/")] {
				return nil, fmt.Errorf("%w: link %q routes to unknown page %q", ErrInvalidLayout, cs.Text, cs.Route)
			}
		}
		return widget.NewLink(cs.Text, cs.Route), nil
	default:
		return nil, fmt.Errorf("%w: unknown widget kind %q", ErrInvalidLayout, cs.Kind)
	}
}

// Install registers pages on m in order.
func Install(m *nav.Manager, pages []*grid.Page) error {
	for _, p := range pages {
		if err := m.AddPage(p); err != nil {
			return fmt.Errorf("install page %q: %w", p.Name(), err)
		}
	}
	return nil
}
