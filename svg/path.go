package svg

import (
	"slices"

	"github.com/google/uuid"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/geom"
)

var _ textpath.Host = (*Path)(nil)

// Default stroke of a path element.
const (
	DefaultStrokeColor = "#3388ff"
	DefaultStrokeWidth = 3
)

type subscription struct {
	id    int
	hooks textpath.Hooks
}

type handler struct {
	id int
	fn func(textpath.Event)
}

// Path is a vector path element. It implements textpath.Host.
type Path struct {
	id          string
	geom        *geom.Path
	color       string
	weight      float64
	interactive bool
	doc         *Document

	length  float64
	samples *geom.Sampled

	subs     []subscription
	handlers []handler
	nextID   int
}

// NewPath creates a path element for g. Unless WithID is given, the path
// gets a unique "pathdef-" id.
func NewPath(g *geom.Path, opts ...PathOption) *Path {
	if g == nil {
		g = geom.NewPath()
	}
	p := &Path{
		id:          "pathdef-" + uuid.NewString(),
		geom:        g.Clone(),
		color:       DefaultStrokeColor,
		weight:      DefaultStrokeWidth,
		interactive: true,
		length:      -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID implements textpath.Host.
func (p *Path) ID() string { return p.id }

// Geometry returns a copy of the path geometry.
func (p *Path) Geometry() *geom.Path { return p.geom.Clone() }

// StrokeColor returns the stroke color.
func (p *Path) StrokeColor() string { return p.color }

// StrokeWidth implements textpath.Host.
func (p *Path) StrokeWidth() float64 { return p.weight }

// Interactive implements textpath.Host.
func (p *Path) Interactive() bool { return p.interactive }

// TotalLength implements textpath.Host.
func (p *Path) TotalLength() float64 {
	if p.length < 0 {
		p.length = p.geom.Length(geom.DefaultAccuracy)
	}
	return p.length
}

// Canvas implements textpath.Host.
func (p *Path) Canvas() textpath.Canvas {
	if p.doc == nil {
		return nil
	}
	return p.doc
}

// Document returns the document the path is on, or nil.
func (p *Path) Document() *Document { return p.doc }

// SetGeometry replaces the path shape. Subscribers are told after the new
// shape is in place.
func (p *Path) SetGeometry(g *geom.Path) {
	if g == nil {
		g = geom.NewPath()
	}
	if p.geom.Equal(g) {
		return
	}
	p.geom = g.Clone()
	p.length = -1
	p.samples = nil
	if p.doc == nil {
		return
	}
	p.emit(func(h textpath.Hooks) {
		if h.OnGeometryChange != nil {
			h.OnGeometryChange()
		}
	})
}

// BringToFront moves the path to the top of its document.
func (p *Path) BringToFront() {
	if p.doc == nil {
		return
	}
	p.doc.raise(p)
	p.emit(func(h textpath.Hooks) {
		if h.OnRaise != nil {
			h.OnRaise()
		}
	})
}

// Subscribe implements textpath.Host.
func (p *Path) Subscribe(h textpath.Hooks) func() {
	id := p.nextID
	p.nextID++
	p.subs = append(p.subs, subscription{id: id, hooks: h})
	return func() {
		p.subs = slices.DeleteFunc(p.subs, func(s subscription) bool { return s.id == id })
	}
}

// On subscribes fn to the path's pointer events and returns a function
// that removes the subscription.
func (p *Path) On(fn func(textpath.Event)) func() {
	id := p.nextID
	p.nextID++
	p.handlers = append(p.handlers, handler{id: id, fn: fn})
	return func() {
		p.handlers = slices.DeleteFunc(p.handlers, func(h handler) bool { return h.id == id })
	}
}

// Fire implements textpath.Host.
func (p *Path) Fire(ev textpath.Event) {
	for _, h := range slices.Clone(p.handlers) {
		h.fn(ev)
	}
}

// emit calls fn for each subscription in subscription order. Handlers may
// unsubscribe while running.
func (p *Path) emit(fn func(textpath.Hooks)) {
	for _, s := range slices.Clone(p.subs) {
		fn(s.hooks)
	}
}

func (p *Path) sampled() *geom.Sampled {
	if p.samples == nil {
		p.samples = p.geom.Sample(geom.DefaultTolerance)
	}
	return p.samples
}
