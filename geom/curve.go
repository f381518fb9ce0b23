package geom

import (
	"math"
	"sort"
)

// QuadBez is a quadratic Bezier segment: start P0, control P1, end P2.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t=0.5 using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	a := q.P0.Lerp(q.P1, 0.5)
	b := q.P1.Lerp(q.P2, 0.5)
	mid := a.Lerp(b, 0.5)
	return QuadBez{q.P0, a, mid}, QuadBez{mid, b, q.P2}
}

// Extrema returns the parameters in (0, 1) where x or y reaches a local extremum.
func (q QuadBez) Extrema() []float64 {
	var ts []float64
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	sort.Float64s(ts)
	return ts
}

// BoundingBox returns the tight bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		bbox = bbox.Extend(q.Eval(t))
	}
	return bbox
}

// CubicBez is a cubic Bezier segment: start P0, controls P1 and P2, end P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a, b, cc, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Point{
		X: a*c.P0.X + b*c.P1.X + cc*c.P2.X + d*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + cc*c.P2.Y + d*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	return CubicBez{c.P0, p01, p012, mid}, CubicBez{mid, p123, p23, c.P3}
}

// Extrema returns the parameters in [0, 1] where x or y reaches a local extremum.
func (c CubicBez) Extrema() []float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	ts := make([]float64, 0, 4)
	ts = append(ts, unitQuadraticRoots(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	ts = append(ts, unitQuadraticRoots(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	sort.Float64s(ts)
	return ts
}

// BoundingBox returns the tight bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = bbox.Extend(c.Eval(t))
	}
	return bbox
}

// flatness is the squared-distance metric of the control points from the
// chord, scaled by 16.
func (c CubicBez) flatness() float64 {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - c.P0.X - 2*c.P3.X
	vy := 3*c.P2.Y - c.P0.Y - 2*c.P3.Y
	return math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)
}

// unitQuadraticRoots solves a*t^2 + b*t + c = 0 and keeps roots in [0, 1].
func unitQuadraticRoots(a, b, c float64) []float64 {
	const eps = 1e-12
	var roots []float64
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		roots = append(roots, -c/b)
	} else {
		disc := b*b - 4*a*c
		switch {
		case disc < 0:
			return nil
		case disc == 0:
			roots = append(roots, -b/(2*a))
		default:
			// Numerically stable form avoids cancellation when b is large.
			q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
			roots = append(roots, q/a)
			if q != 0 {
				roots = append(roots, c/q)
			}
		}
	}

	out := roots[:0]
	for _, t := range roots {
		if t >= -eps && t <= 1+eps {
			out = append(out, math.Min(math.Max(t, 0), 1))
		}
	}
	return out
}
