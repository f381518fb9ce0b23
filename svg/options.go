package svg

import "github.com/gogpu/textpath/text"

// Option configures a Document.
type Option func(*Document)

// WithMeasurer sets the backend used to measure label text. The default is
// a cached advance measurer over the bundled Go fonts.
func WithMeasurer(m text.Measurer) Option {
	return func(d *Document) {
		if m != nil {
			d.measurer = m
		}
	}
}

// WithPointerEvents sets whether nodes receive pointer events.
// Documents support pointer events by default.
func WithPointerEvents(on bool) Option {
	return func(d *Document) {
		d.pointer = on
	}
}

// WithVectorText sets whether the document renders label nodes at all.
// A document without vector text keeps paths but never hosts labels.
func WithVectorText(on bool) Option {
	return func(d *Document) {
		d.vector = on
	}
}

// WithSize sets the width and height attributes of the root element.
func WithSize(width, height float64) Option {
	return func(d *Document) {
		d.width, d.height = width, height
	}
}

// PathOption configures a Path.
type PathOption func(*Path)

// WithID sets the element id labels use to reference the path.
func WithID(id string) PathOption {
	return func(p *Path) {
		if id != "" {
			p.id = id
		}
	}
}

// WithStroke sets the stroke color and width.
func WithStroke(color string, width float64) PathOption {
	return func(p *Path) {
		if color != "" {
			p.color = color
		}
		if width > 0 {
			p.weight = width
		}
	}
}

// WithInteractive sets whether the path is a pointer target.
func WithInteractive(on bool) PathOption {
	return func(p *Path) {
		p.interactive = on
	}
}
