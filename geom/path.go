package geom

import (
	"strconv"
	"strings"
)

// Segment is a single element of a Path.
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath without drawing.
type MoveTo struct {
	Point Point
}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isSegment()  {}
func (LineTo) isSegment()  {}
func (QuadTo) isSegment()  {}
func (CubicTo) isSegment() {}
func (Close) isSegment()   {}

// Path is a vector path made of one or more subpaths.
type Path struct {
	segments []Segment
	start    Point // start of the current subpath
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{segments: make([]Segment, 0, 16)}
}

// Polyline builds an open path through the given points.
func Polyline(pts ...Point) *Path {
	p := NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to its start point.
func (p *Path) Close() {
	p.segments = append(p.segments, Close{})
	p.current = p.start
}

// Segments returns the path segments.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return p == nil || len(p.segments) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// StartPoint returns the start of the current subpath.
func (p *Path) StartPoint() Point {
	return p.start
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{
		segments: make([]Segment, len(p.segments)),
		start:    p.start,
		current:  p.current,
	}
	copy(out.segments, p.segments)
	return out
}

// Equal reports whether both paths hold the same segments.
func (p *Path) Equal(q *Path) bool {
	if p.Empty() || q.Empty() {
		return p.Empty() == q.Empty()
	}
	if len(p.segments) != len(q.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != q.segments[i] {
			return false
		}
	}
	return true
}

// PathData serializes the path as an SVG "d" attribute using absolute commands.
func (p *Path) PathData() string {
	var b strings.Builder
	for i, seg := range p.segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s := seg.(type) {
		case MoveTo:
			b.WriteByte('M')
			writePoints(&b, s.Point)
		case LineTo:
			b.WriteByte('L')
			writePoints(&b, s.Point)
		case QuadTo:
			b.WriteByte('Q')
			writePoints(&b, s.Control, s.Point)
		case CubicTo:
			b.WriteByte('C')
			writePoints(&b, s.Control1, s.Control2, s.Point)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoints(b *strings.Builder, pts ...Point) {
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatFloat(pt.X))
		b.WriteByte(',')
		b.WriteString(FormatFloat(pt.Y))
	}
}

// FormatFloat formats v in the shortest form that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
