package widget

// Kind identifies the widget variant.
type Kind uint8

const (
	KindLabel Kind = iota + 1
	KindButton
	KindRadio
	KindCheckBox
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindRadio:
		return "radio"
	case KindCheckBox:
		return "checkbox"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// MaxTextLen caps Label and Button text (in runes).
const MaxTextLen = 31

// Route targets handled by the page manager instead of a page lookup.
const (
	RouteBack = "/back"
	RouteNext = "/next"
)

// Widget is a closed tagged variant over the five widget kinds.
//
// The zero value is not usable; build widgets with the New* constructors.
type Widget struct {
	kind   Kind
	text   string
	on     bool // selected (radio) or checked (checkbox)
	route  string
	action func()
}

// NewLabel returns a non-interactive text widget.
func NewLabel(text string) *Widget {
	return &Widget{kind: KindLabel, text: clampText(text)}
}

// NewButton returns a button bound to action. A nil action makes Press a no-op.
func NewButton(text string, action func()) *Widget {
	return &Widget{kind: KindButton, text: clampText(text), action: action}
}

// NewRadio returns a radio button. Exclusivity is enforced per grid row by the page.
func NewRadio(text string, selected bool) *Widget {
	return &Widget{kind: KindRadio, text: text, on: selected}
}

// NewCheckBox returns a checkbox.
func NewCheckBox(text string, checked bool) *Widget {
	return &Widget{kind: KindCheckBox, text: text, on: checked}
}

// NewLink returns a link to route ("/back", "/next" or "/<PageName>").
func NewLink(text, route string) *Widget {
	return &Widget{kind: KindLink, text: text, route: route}
}

func (w *Widget) Kind() Kind   { return w.kind }
func (w *Widget) Text() string { return w.text }

// SetText replaces the text of a Label or Button. Other kinds keep their text.
func (w *Widget) SetText(text string) {
	switch w.kind {
	case KindLabel, KindButton:
		w.text = clampText(text)
	}
}

// Selected reports the radio state. It is false for non-radio widgets.
func (w *Widget) Selected() bool { return w.kind == KindRadio && w.on }

// Checked reports the checkbox state. It is false for non-checkbox widgets.
func (w *Widget) Checked() bool { return w.kind == KindCheckBox && w.on }

// Select marks a radio button as selected.
func (w *Widget) Select() {
	if w.kind == KindRadio {
		w.on = true
	}
}

// Deselect clears a radio button.
func (w *Widget) Deselect() {
	if w.kind == KindRadio {
		w.on = false
	}
}

// Toggle flips a checkbox.
func (w *Widget) Toggle() {
	if w.kind == KindCheckBox {
		w.on = !w.on
	}
}

// Route returns the link target. It is empty for non-link widgets.
func (w *Widget) Route() string { return w.route }

// Press invokes the bound button action.
func (w *Widget) Press() {
	if w.kind == KindButton && w.action != nil {
		w.action()
	}
}

// Interactive reports whether activating the widget can change anything.
func (w *Widget) Interactive() bool { return w.kind != KindLabel }

func clampText(s string) string {
	n := 0
	for i := range s {
		if n == MaxTextLen {
			return s[:i]
		}
		n++
	}
	return s
}
