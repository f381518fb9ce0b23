package textpath

import (
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/gogpu/textpath/geom"
)

// fakeHost is a path entity with scripted geometry.
type fakeHost struct {
	id          string
	length      float64
	stroke      float64
	interactive bool
	canvas      Canvas

	hooks  map[int]Hooks
	nextID int
	fired  []Event
}

func newFakeHost(id string, length float64) *fakeHost {
	return &fakeHost{id: id, length: length, stroke: 3, hooks: make(map[int]Hooks)}
}

func (h *fakeHost) ID() string           { return h.id }
func (h *fakeHost) TotalLength() float64 { return h.length }
func (h *fakeHost) StrokeWidth() float64 { return h.stroke }
func (h *fakeHost) Interactive() bool    { return h.interactive }
func (h *fakeHost) Canvas() Canvas       { return h.canvas }
func (h *fakeHost) Fire(ev Event)        { h.fired = append(h.fired, ev) }
func (h *fakeHost) subscribers() int     { return len(h.hooks) }

func (h *fakeHost) each(fn func(Hooks)) {
	for _, k := range h.sortedKeys() {
		fn(h.hooks[k])
	}
}

func (h *fakeHost) sortedKeys() []int {
	keys := make([]int, 0, len(h.hooks))
	for k := range h.hooks {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (h *fakeHost) Subscribe(hk Hooks) func() {
	id := h.nextID
	h.nextID++
	h.hooks[id] = hk
	return func() { delete(h.hooks, id) }
}

func (h *fakeHost) attach(c Canvas) {
	h.canvas = c
	h.each(func(hk Hooks) {
		if hk.OnAttach != nil {
			hk.OnAttach(c)
		}
	})
}

func (h *fakeHost) detach() {
	h.each(func(hk Hooks) {
		if hk.OnDetach != nil {
			hk.OnDetach()
		}
	})
	h.canvas = nil
}

func (h *fakeHost) reshape(length float64) {
	h.length = length
	h.each(func(hk Hooks) {
		if hk.OnGeometryChange != nil {
			hk.OnGeometryChange()
		}
	})
}

func (h *fakeHost) raise() {
	h.each(func(hk Hooks) {
		if hk.OnRaise != nil {
			hk.OnRaise()
		}
	})
}

// fakeNode records everything the overlay does to it.
type fakeNode struct {
	pathID      string
	text        string
	attrs       map[string]string
	interactive bool
	listeners   map[EventKind]map[int]func(Event)
	nextID      int
}

func (n *fakeNode) SetText(s string)           { n.text = s }
func (n *fakeNode) SetAttr(name, value string) { n.attrs[name] = value }
func (n *fakeNode) SetInteractive(on bool)     { n.interactive = on }

func (n *fakeNode) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *fakeNode) On(kind EventKind, fn func(Event)) func() {
	if n.listeners[kind] == nil {
		n.listeners[kind] = make(map[int]func(Event))
	}
	id := n.nextID
	n.nextID++
	n.listeners[kind][id] = fn
	return func() { delete(n.listeners[kind], id) }
}

func (n *fakeNode) listenerCount() int {
	total := 0
	for _, m := range n.listeners {
		total += len(m)
	}
	return total
}

func (n *fakeNode) dispatch(ev Event) {
	for _, fn := range n.listeners[ev.Kind] {
		fn(ev)
	}
}

func (n *fakeNode) attrFloat(name string) float64 {
	v, _ := strconv.ParseFloat(n.attrs[name], 64)
	return v
}

// fakeCanvas measures every rune as unit pixels wide.
type fakeCanvas struct {
	vector   bool
	pointer  bool
	closed   bool
	unit     float64
	children []LabelNode
	measured []string
}

func newFakeCanvas(unit float64) *fakeCanvas {
	return &fakeCanvas{vector: true, pointer: true, unit: unit}
}

func (c *fakeCanvas) SupportsVector() bool  { return c.vector }
func (c *fakeCanvas) SupportsPointer() bool { return c.pointer }

func (c *fakeCanvas) Container() (Container, bool) {
	if c.closed {
		return nil, false
	}
	return c, true
}

func (c *fakeCanvas) NewLabel(pathID string) LabelNode {
	return &fakeNode{
		pathID:    pathID,
		attrs:     make(map[string]string),
		listeners: make(map[EventKind]map[int]func(Event)),
	}
}

func (c *fakeCanvas) MeasureText(s string, attrs map[string]string) float64 {
	c.measured = append(c.measured, s)
	return float64(utf8.RuneCountInString(s)) * c.unit
}

// BoundingBox places the text on a horizontal path at y=0 with a 12px
// tall glyph band ending at the baseline.
func (c *fakeCanvas) BoundingBox(n LabelNode) geom.Rect {
	fn := n.(*fakeNode)
	w := float64(utf8.RuneCountInString(fn.text)) * c.unit
	dx, dy := fn.attrFloat("dx"), fn.attrFloat("dy")
	return geom.XYWH(dx, dy-12, w, 12)
}

func (c *fakeCanvas) Append(n LabelNode) { c.children = append(c.children, n) }

func (c *fakeCanvas) InsertFirst(n LabelNode) {
	c.children = append([]LabelNode{n}, c.children...)
}

func (c *fakeCanvas) Remove(n LabelNode) bool {
	i := slices.Index(c.children, n)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	return true
}

func (c *fakeCanvas) texts() []string {
	out := make([]string, 0, len(c.children))
	for _, n := range c.children {
		out = append(out, n.(*fakeNode).text)
	}
	return out
}
