package geom

import "math"

const (
	// DefaultAccuracy is the arc-length accuracy used when none is given.
	DefaultAccuracy = 0.001

	// DefaultTolerance is the flattening tolerance used when none is given.
	DefaultTolerance = 0.1
)

// Length returns the total arc length of the path.
// accuracy controls the precision of the approximation (smaller = more accurate).
// Subpath jumps introduced by MoveTo do not count; Close adds the closing line.
func (p *Path) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	accSq := accuracy * accuracy

	var length float64
	var current, start Point
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			current, start = s.Point, s.Point
		case LineTo:
			length += current.Distance(s.Point)
			current = s.Point
		case QuadTo:
			length += quadLength(QuadBez{current, s.Control, s.Point}, accSq)
			current = s.Point
		case CubicTo:
			length += cubicLength(CubicBez{current, s.Control1, s.Control2, s.Point}, accSq)
			current = s.Point
		case Close:
			length += current.Distance(start)
			current = start
		}
	}
	return length
}

// quadLength uses adaptive subdivision until chord and control polygon agree.
func quadLength(q QuadBez, accSq float64) float64 {
	chord := q.P0.Distance(q.P2)
	polygon := q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
	if d := polygon - chord; d*d <= accSq {
		return (chord + polygon) / 2
	}
	a, b := q.Subdivide()
	return quadLength(a, accSq) + quadLength(b, accSq)
}

func cubicLength(c CubicBez, accSq float64) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	if d := polygon - chord; d*d <= accSq {
		return (chord + polygon) / 2
	}
	a, b := c.Subdivide()
	return cubicLength(a, accSq) + cubicLength(b, accSq)
}

// BoundingBox returns the tight axis-aligned bounding box of the path.
// Uses curve extrema for accuracy. An empty path yields the zero Rect.
func (p *Path) BoundingBox() Rect {
	if p.Empty() {
		return Rect{}
	}
	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	var current Point
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			bbox = bbox.Extend(s.Point)
			current = s.Point
		case LineTo:
			bbox = bbox.Extend(s.Point)
			current = s.Point
		case QuadTo:
			bbox = bbox.Union(QuadBez{current, s.Control, s.Point}.BoundingBox())
			current = s.Point
		case CubicTo:
			bbox = bbox.Union(CubicBez{current, s.Control1, s.Control2, s.Point}.BoundingBox())
			current = s.Point
		}
	}
	return bbox
}

// Flatten converts the path into subpaths of line-segment vertices.
// tolerance is the maximum distance from the curve.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	tolSq := tolerance * tolerance

	var out [][]Point
	var sub []Point
	var current, start Point
	flush := func() {
		if len(sub) > 0 {
			out = append(out, sub)
		}
		sub = nil
	}
	emit := func(pt Point) { sub = append(sub, pt) }

	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			flush()
			emit(s.Point)
			current, start = s.Point, s.Point
		case LineTo:
			if len(sub) == 0 {
				emit(current)
			}
			emit(s.Point)
			current = s.Point
		case QuadTo:
			if len(sub) == 0 {
				emit(current)
			}
			flattenQuad(QuadBez{current, s.Control, s.Point}, tolSq, emit)
			current = s.Point
		case CubicTo:
			if len(sub) == 0 {
				emit(current)
			}
			flattenCubic(CubicBez{current, s.Control1, s.Control2, s.Point}, tolSq, emit)
			current = s.Point
		case Close:
			if current != start {
				emit(start)
			}
			current = start
		}
	}
	flush()
	return out
}

func flattenQuad(q QuadBez, tolSq float64, fn func(Point)) {
	mid := q.P0.Lerp(q.P2, 0.5)
	if d := q.P1.Sub(mid); d.X*d.X+d.Y*d.Y <= tolSq {
		fn(q.P2)
		return
	}
	a, b := q.Subdivide()
	flattenQuad(a, tolSq, fn)
	flattenQuad(b, tolSq, fn)
}

func flattenCubic(c CubicBez, tolSq float64, fn func(Point)) {
	if c.flatness() <= tolSq*16 {
		fn(c.P3)
		return
	}
	a, b := c.Subdivide()
	flattenCubic(a, tolSq, fn)
	flattenCubic(b, tolSq, fn)
}
