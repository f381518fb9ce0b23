package geom

import (
	"math"
	"sort"
)

// Sampled is a flattened path parameterised by arc length.
// Jumps between subpaths contribute no length, so a distance along a
// multi-subpath Sampled continues on the next subpath.
type Sampled struct {
	pts   []Point
	dist  []float64 // cumulative distance at pts[i]
	first []bool    // pts[i] starts a subpath
}

// Sample flattens p with the given tolerance and indexes it by arc length.
func (p *Path) Sample(tolerance float64) *Sampled {
	s := &Sampled{}
	var total float64
	for _, sub := range p.Flatten(tolerance) {
		for i, pt := range sub {
			if i > 0 {
				total += pt.Distance(sub[i-1])
			}
			s.pts = append(s.pts, pt)
			s.dist = append(s.dist, total)
			s.first = append(s.first, i == 0)
		}
	}
	return s
}

// Length returns the total length of the flattened path.
func (s *Sampled) Length() float64 {
	if len(s.dist) == 0 {
		return 0
	}
	return s.dist[len(s.dist)-1]
}

// PointAt returns the position at distance d along the path and the tangent
// angle there. d is clamped to [0, Length].
func (s *Sampled) PointAt(d float64) (Point, float64) {
	n := len(s.pts)
	switch {
	case n == 0:
		return Point{}, 0
	case n == 1:
		return s.pts[0], 0
	}
	d = math.Max(0, math.Min(d, s.Length()))

	// First vertex whose distance reaches d; skip subpath starts so the
	// segment i-1 -> i is always drawn.
	i := sort.SearchFloat64s(s.dist, d)
	if i == 0 {
		i = 1
	}
	for i < n-1 && (s.first[i] || s.dist[i] == s.dist[i-1]) && s.dist[i] <= d {
		i++
	}
	a, b := s.pts[i-1], s.pts[i]
	if s.first[i] {
		return a, 0
	}
	seg := s.dist[i] - s.dist[i-1]
	t := 0.0
	if seg > 0 {
		t = (d - s.dist[i-1]) / seg
	}
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	return a.Lerp(b, t), angle
}

// Span returns the bounding box of the band from distance from to distance
// to, offset perpendicular to the path by [near, far]. Positive offsets go
// to the right of the direction of travel (down for a left-to-right path).
func (s *Sampled) Span(from, to, near, far float64) Rect {
	if from > to {
		from, to = to, from
	}
	if len(s.pts) == 0 {
		return Rect{}
	}

	var bbox Rect
	started := false
	add := func(d float64) {
		pt, angle := s.PointAt(d)
		normal := Pt(-math.Sin(angle), math.Cos(angle))
		for _, off := range [2]float64{near, far} {
			q := pt.Add(normal.Mul(off))
			if !started {
				bbox = Rect{Min: q, Max: q}
				started = true
				continue
			}
			bbox = bbox.Extend(q)
		}
	}

	add(from)
	for i, d := range s.dist {
		if d > from && d < to && !s.first[i] {
			add(d)
		}
	}
	add(to)
	return bbox
}
