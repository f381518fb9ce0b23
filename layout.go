package textpath

import (
	"math"
	"strings"

	"github.com/gogpu/textpath/geom"
)

// nbsp keeps renderers from collapsing runs of spaces in label text.
const nbsp = "\u00a0"

// Placement is the computed layout of one annotation on one path.
type Placement struct {
	// Text is the string to render, spaces made non-breaking and tiled
	// when repeating.
	Text string

	// Copies is the number of tiles when repeating, 1 otherwise.
	Copies int

	// DX is the along-path start offset; valid when HasDX is set.
	DX    float64
	HasDX bool

	// DY is the baseline shift.
	DY float64

	// Angle is the rotation in degrees; valid when Rotate is set.
	Angle  float64
	Rotate bool
}

// MeasureFunc measures the rendered length of a string.
type MeasureFunc func(s string) float64

// ComputePlacement lays out ann on a path of length pathLength and the
// given stroke width. measure is the host's measurement primitive, bound to
// the annotation's presentation attributes.
func ComputePlacement(ann Annotation, pathLength, strokeWidth float64, measure MeasureFunc) Placement {
	opts := ann.Options
	pl := Placement{
		Text:   strings.ReplaceAll(ann.Text, " ", nbsp),
		Copies: 1,
		DY:     BaselineShift(opts.Offset, strokeWidth),
	}

	if opts.Repeat {
		pl.Copies = RepeatCount(pathLength, measure(pl.Text))
		pl.Text = strings.Repeat(pl.Text, pl.Copies)
	}

	switch {
	case opts.OffsetX != nil:
		pl.DX, pl.HasDX = *opts.OffsetX, true
	case opts.Center:
		pl.DX, pl.HasDX = CenterOffset(pathLength, measure(pl.Text)), true
	}

	pl.Angle, pl.Rotate = ResolveAngle(opts.Orientation)
	return pl
}

// RepeatCount returns how many copies of a text measuring unit fill a path
// of length pathLength: ceil(pathLength/unit). Degenerate inputs (zero,
// negative or non-finite) yield zero copies.
func RepeatCount(pathLength, unit float64) int {
	if !(unit > 0) || !(pathLength > 0) || math.IsInf(unit, 0) || math.IsInf(pathLength, 0) {
		return 0
	}
	n := math.Ceil(pathLength / unit)
	if math.IsNaN(n) || math.IsInf(n, 0) || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}

// CenterOffset returns the start offset that aligns the midpoint of a text
// of length textLength with the midpoint of the path.
func CenterOffset(pathLength, textLength float64) float64 {
	return pathLength/2 - textLength/2
}

// BaselineShift returns the vertical text shift: offset when set, the path
// stroke width otherwise. An explicit zero offset is kept.
func BaselineShift(offset *float64, strokeWidth float64) float64 {
	if offset != nil {
		return *offset
	}
	return strokeWidth
}

// ResolveAngle maps an orientation to a rotation in degrees. The second
// result is false when no rotation applies.
func ResolveAngle(o Orientation) (float64, bool) {
	switch o.kind {
	case orientFlip:
		return 180, true
	case orientPerpendicular:
		return 90, true
	case orientDegrees:
		return o.degrees, o.degrees != 0
	default:
		return 0, false
	}
}

// RotationPivot returns the center of a label's own bounding box, the
// point labels rotate around.
func RotationPivot(bbox geom.Rect) geom.Point {
	return geom.Pt(bbox.X()+bbox.Width()/2, bbox.Y()+bbox.Height()/2)
}

// RotateTransform formats an SVG rotate() transform around pivot.
func RotateTransform(angle float64, pivot geom.Point) string {
	return "rotate(" + geom.FormatFloat(angle) + " " +
		geom.FormatFloat(pivot.X) + " " + geom.FormatFloat(pivot.Y) + ")"
}

func formatFloat(v float64) string {
	return geom.FormatFloat(v)
}
