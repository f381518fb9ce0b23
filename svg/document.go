package svg

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/geom"
	"github.com/gogpu/textpath/text"
)

var (
	_ textpath.Canvas    = (*Document)(nil)
	_ textpath.Container = (*Document)(nil)
)

// Document is an SVG drawing. It is the canvas paths attach to and the
// container label nodes are inserted into.
//
// A Document is not safe for concurrent use.
type Document struct {
	width, height float64
	measurer      text.Measurer
	pointer       bool
	vector        bool
	closed        bool

	// nodes holds *Path and *Label elements, bottom first.
	nodes []any
	paths map[string]*Path
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		pointer: true,
		vector:  true,
		paths:   make(map[string]*Path),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.measurer == nil {
		d.measurer = text.NewCachedMeasurer(text.NewAdvanceMeasurer(text.DefaultCollection()), 0)
	}
	return d
}

// AddPath puts p on top of the document and fires its attach hooks.
// A path on another document is moved. Path ids are unique within a
// document; adding a second path with a taken id fails with ErrDuplicateID.
func (d *Document) AddPath(p *Path) error {
	if p.doc == d {
		return nil
	}
	if q, ok := d.paths[p.id]; ok && q != p {
		return fmt.Errorf("%w: %q", ErrDuplicateID, p.id)
	}
	if p.doc != nil {
		p.doc.RemovePath(p)
	}
	p.doc = d
	d.nodes = append(d.nodes, p)
	d.paths[p.id] = p
	textpath.Logger().Debug("svg: path added", "path", p.id, "length", p.TotalLength())
	p.emit(func(h textpath.Hooks) {
		if h.OnAttach != nil {
			h.OnAttach(d)
		}
	})
	return nil
}

// RemovePath fires the detach hooks of p and then removes it. It reports
// whether p was on the document.
func (d *Document) RemovePath(p *Path) bool {
	if p.doc != d {
		return false
	}
	p.emit(func(h textpath.Hooks) {
		if h.OnDetach != nil {
			h.OnDetach()
		}
	})
	d.remove(p)
	delete(d.paths, p.id)
	p.doc = nil
	textpath.Logger().Debug("svg: path removed", "path", p.id)
	return true
}

// Paths returns the paths in stacking order.
func (d *Document) Paths() []*Path {
	var out []*Path
	for _, n := range d.nodes {
		if p, ok := n.(*Path); ok {
			out = append(out, p)
		}
	}
	return out
}

// Labels returns the label nodes in stacking order.
func (d *Document) Labels() []*Label {
	var out []*Label
	for _, n := range d.nodes {
		if l, ok := n.(*Label); ok {
			out = append(out, l)
		}
	}
	return out
}

// Close tears the document down. Label nodes are dropped and the container
// becomes unavailable; paths stay so the drawing can still be written.
func (d *Document) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.nodes = slices.DeleteFunc(d.nodes, func(n any) bool {
		_, ok := n.(*Label)
		return ok
	})
}

// SupportsVector implements textpath.Canvas.
func (d *Document) SupportsVector() bool { return d.vector }

// SupportsPointer implements textpath.Canvas.
func (d *Document) SupportsPointer() bool { return d.pointer }

// Container implements textpath.Canvas.
func (d *Document) Container() (textpath.Container, bool) {
	if d.closed {
		return nil, false
	}
	return d, true
}

// NewLabel implements textpath.Canvas.
func (d *Document) NewLabel(pathID string) textpath.LabelNode {
	return &Label{
		pathID: pathID,
		attrs:  make(map[string]string),
	}
}

// MeasureText implements textpath.Canvas.
func (d *Document) MeasureText(s string, attrs map[string]string) float64 {
	return d.measurer.Measure(s, text.ParseStyle(attrs))
}

// BoundingBox implements textpath.Canvas. The box covers the glyph band of
// the label from its dx offset along the referenced path, shifted by dy.
// Labels of unknown paths have an empty box.
func (d *Document) BoundingBox(n textpath.LabelNode) geom.Rect {
	l, ok := n.(*Label)
	if !ok {
		return geom.Rect{}
	}
	p, ok := d.paths[l.pathID]
	if !ok {
		return geom.Rect{}
	}
	st := text.ParseStyle(l.attrs)
	m := d.measurer.Metrics(st)
	dx := l.floatAttr("dx")
	dy := l.floatAttr("dy")
	w := d.measurer.Measure(l.text, st)
	return p.sampled().Span(dx, dx+w, dy-m.Ascent, dy+m.Descent)
}

// Append implements textpath.Container.
func (d *Document) Append(n textpath.LabelNode) {
	if l, ok := n.(*Label); ok {
		d.nodes = append(d.nodes, l)
	}
}

// InsertFirst implements textpath.Container. The node goes below every
// element, paths included.
func (d *Document) InsertFirst(n textpath.LabelNode) {
	if l, ok := n.(*Label); ok {
		d.nodes = slices.Insert(d.nodes, 0, any(l))
	}
}

// Remove implements textpath.Container.
func (d *Document) Remove(n textpath.LabelNode) bool {
	l, ok := n.(*Label)
	if !ok {
		return false
	}
	return d.remove(l)
}

// raise moves p to the top of the stacking order.
func (d *Document) raise(p *Path) {
	if d.remove(p) {
		d.nodes = append(d.nodes, p)
	}
}

func (d *Document) remove(n any) bool {
	i := slices.Index(d.nodes, n)
	if i < 0 {
		return false
	}
	d.nodes = slices.Delete(d.nodes, i, i+1)
	return true
}

// parseFloat reads a numeric attribute; malformed values read as zero.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
