package svg

import (
	"maps"
	"slices"

	"github.com/gogpu/textpath"
)

var _ textpath.LabelNode = (*Label)(nil)

// Label is a text element whose content follows a path.
type Label struct {
	pathID      string
	text        string
	attrs       map[string]string
	interactive bool

	handlers map[textpath.EventKind][]handler
	nextID   int
}

// PathID returns the id of the path the label follows.
func (l *Label) PathID() string { return l.pathID }

// Text returns the text content.
func (l *Label) Text() string { return l.text }

// Attrs returns a copy of the presentation attributes.
func (l *Label) Attrs() map[string]string { return maps.Clone(l.attrs) }

// IsInteractive reports whether the label is a pointer target.
func (l *Label) IsInteractive() bool { return l.interactive }

// SetText implements textpath.LabelNode.
func (l *Label) SetText(s string) { l.text = s }

// SetAttr implements textpath.LabelNode.
func (l *Label) SetAttr(name, value string) { l.attrs[name] = value }

// Attr implements textpath.LabelNode.
func (l *Label) Attr(name string) (string, bool) {
	v, ok := l.attrs[name]
	return v, ok
}

// SetInteractive implements textpath.LabelNode.
func (l *Label) SetInteractive(on bool) { l.interactive = on }

// On implements textpath.LabelNode.
func (l *Label) On(kind textpath.EventKind, fn func(textpath.Event)) func() {
	if l.handlers == nil {
		l.handlers = make(map[textpath.EventKind][]handler)
	}
	id := l.nextID
	l.nextID++
	l.handlers[kind] = append(l.handlers[kind], handler{id: id, fn: fn})
	return func() {
		l.handlers[kind] = slices.DeleteFunc(l.handlers[kind], func(h handler) bool { return h.id == id })
	}
}

// Dispatch delivers ev to the label's subscribers for ev.Kind.
// Labels that are not interactive ignore pointer input.
func (l *Label) Dispatch(ev textpath.Event) {
	if !l.interactive {
		return
	}
	for _, h := range slices.Clone(l.handlers[ev.Kind]) {
		h.fn(ev)
	}
}

func (l *Label) floatAttr(name string) float64 {
	return parseFloat(l.attrs[name])
}
