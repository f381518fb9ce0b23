package geom

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// argCount is the number of numeric arguments each command consumes.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'Q': 4, 'T': 2, 'C': 6, 'S': 4, 'A': 7, 'Z': 0,
}

// ParsePathData parses an SVG path "d" attribute. Both absolute and relative
// forms of M, L, H, V, Q, T, C, S, A and Z are understood; elliptical arcs
// are converted to cubic Beziers.
func ParsePathData(d string) (*Path, error) {
	p := NewPath()
	data := []byte(d)

	var args [7]float64
	var cmd byte
	var last Point // current point
	var ctrl Point // last control point, for S and T
	var prev byte  // previous command, upper-cased

	i := skipSeparators(data, 0)
	for i < len(data) {
		c := data[i]
		switch {
		case isCommand(c):
			cmd = c
			i = skipSeparators(data, i+1)
		case cmd == 0 || cmd&^0x20 == 'Z':
			return nil, &PathDataError{Offset: i, Reason: fmt.Sprintf("expected command, found %q", c)}
		}

		upper := cmd &^ 0x20
		rel := cmd != upper
		n := argCount[upper]
		for j := 0; j < n; j++ {
			if upper == 'A' && (j == 3 || j == 4) {
				if i >= len(data) || (data[i] != '0' && data[i] != '1') {
					return nil, &PathDataError{Offset: i, Reason: "arc flags must be 0 or 1"}
				}
				args[j] = float64(data[i] - '0')
				i = skipSeparators(data, i+1)
				continue
			}
			num, k := strconv.ParseFloat(data[i:])
			if k == 0 {
				return nil, &PathDataError{Offset: i, Reason: fmt.Sprintf("command %q needs %d numbers", cmd, n)}
			}
			args[j] = num
			i = skipSeparators(data, i+k)
		}

		var origin Point
		if rel {
			origin = last
		}
		abs := func(x, y float64) Point { return Pt(origin.X+x, origin.Y+y) }

		switch upper {
		case 'M':
			pt := abs(args[0], args[1])
			p.MoveTo(pt.X, pt.Y)
			last, ctrl = pt, pt
			// Further coordinate pairs after a moveto are implicit linetos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			pt := abs(args[0], args[1])
			p.LineTo(pt.X, pt.Y)
			last, ctrl = pt, pt
		case 'H':
			pt := Pt(origin.X+args[0], last.Y)
			p.LineTo(pt.X, pt.Y)
			last, ctrl = pt, pt
		case 'V':
			pt := Pt(last.X, origin.Y+args[0])
			p.LineTo(pt.X, pt.Y)
			last, ctrl = pt, pt
		case 'Q':
			c1 := abs(args[0], args[1])
			pt := abs(args[2], args[3])
			p.QuadraticTo(c1.X, c1.Y, pt.X, pt.Y)
			last, ctrl = pt, c1
		case 'T':
			c1 := last
			if prev == 'Q' || prev == 'T' {
				c1 = ctrl.Reflect(last)
			}
			pt := abs(args[0], args[1])
			p.QuadraticTo(c1.X, c1.Y, pt.X, pt.Y)
			last, ctrl = pt, c1
		case 'C':
			c1 := abs(args[0], args[1])
			c2 := abs(args[2], args[3])
			pt := abs(args[4], args[5])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			last, ctrl = pt, c2
		case 'S':
			c1 := last
			if prev == 'C' || prev == 'S' {
				c1 = ctrl.Reflect(last)
			}
			c2 := abs(args[0], args[1])
			pt := abs(args[2], args[3])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			last, ctrl = pt, c2
		case 'A':
			pt := abs(args[5], args[6])
			p.arcTo(last, args[0], args[1], args[2], args[3] == 1, args[4] == 1, pt)
			last, ctrl = pt, pt
		case 'Z':
			p.Close()
			last = p.StartPoint()
			ctrl = last
		default:
			return nil, &PathDataError{Offset: i, Reason: fmt.Sprintf("unknown command %q", cmd)}
		}
		prev = upper
	}
	return p, nil
}

func isCommand(c byte) bool {
	_, ok := argCount[c&^0x20]
	return ok
}

func skipSeparators(data []byte, i int) int {
	for i < len(data) {
		switch data[i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			i++
		default:
			return i
		}
	}
	return i
}

// arcTo appends an SVG elliptical arc from p0 to p1 as cubic Beziers, using
// the endpoint to center parameterisation of the SVG implementation notes.
func (p *Path) arcTo(p0 Point, rx, ry, xRotDeg float64, large, sweep bool, p1 Point) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if p0 == p1 {
		return
	}
	if rx == 0 || ry == 0 {
		p.LineTo(p1.X, p1.Y)
		return
	}

	phi := xRotDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	dx, dy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Scale up radii that are too small to span the endpoints.
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	delta := theta2 - theta1
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	at := func(t float64) (Point, Point) {
		cos, sin := math.Cos(t), math.Sin(t)
		pt := Pt(cx+rx*cos*cosPhi-ry*sin*sinPhi, cy+rx*cos*sinPhi+ry*sin*cosPhi)
		deriv := Pt(-rx*sin*cosPhi-ry*cos*sinPhi, -rx*sin*sinPhi+ry*cos*cosPhi)
		return pt, deriv
	}
	for i := 0; i < n; i++ {
		t0 := theta1 + float64(i)*step
		t1 := t0 + step
		a, da := at(t0)
		b, db := at(t1)
		c1 := a.Add(da.Mul(k))
		c2 := b.Sub(db.Mul(k))
		if i == n-1 {
			b = p1
		}
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, b.X, b.Y)
	}
}
