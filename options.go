package textpath

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultFillColor is the text color used when LabelOptions.FillColor is empty.
const DefaultFillColor = "black"

// LabelOptions configures how one annotation is laid out and rendered.
// The zero value renders the text once, from the start of the path, with
// the baseline shifted by the path's stroke width.
type LabelOptions struct {
	// Repeat tiles the text so copies span the whole path.
	Repeat bool

	// FillColor is the text color. Hex colors are normalized.
	FillColor string

	// Attributes are passed through to the rendered node (font-size, ...).
	Attributes map[string]string

	// Below inserts the label under existing nodes instead of on top.
	Below bool

	// Center aligns the text midpoint with the path midpoint.
	Center bool

	// Offset shifts the baseline. Nil means "use the stroke width".
	Offset *float64

	// OffsetX shifts the text along the path. When set it takes
	// precedence over Center.
	OffsetX *float64

	// Orientation rotates the label around its own center.
	Orientation Orientation

	// Interactive overrides the path's interactivity for this label.
	Interactive Toggle
}

// Equal reports whether o and other describe the same label configuration.
func (o LabelOptions) Equal(other LabelOptions) bool {
	return o.Repeat == other.Repeat &&
		o.FillColor == other.FillColor &&
		o.Below == other.Below &&
		o.Center == other.Center &&
		sameFloat(o.Offset, other.Offset) &&
		sameFloat(o.OffsetX, other.OffsetX) &&
		o.Orientation == other.Orientation &&
		o.Interactive == other.Interactive &&
		maps.Equal(o.Attributes, other.Attributes)
}

// clone returns a copy that shares no mutable state with o.
func (o LabelOptions) clone() LabelOptions {
	o.Attributes = maps.Clone(o.Attributes)
	o.Offset = cloneFloat(o.Offset)
	o.OffsetX = cloneFloat(o.OffsetX)
	return o
}

// Float returns a pointer to v, for the optional LabelOptions offsets.
func Float(v float64) *float64 {
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(*p)
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// fill returns the color to render with.
func (o LabelOptions) fill() string {
	if o.FillColor == "" {
		return DefaultFillColor
	}
	if c, err := colorful.Hex(o.FillColor); err == nil {
		return c.Hex()
	}
	return o.FillColor
}

// Toggle is a tri-state boolean whose zero value defers to an inherited one.
type Toggle uint8

const (
	Inherit Toggle = iota
	On
	Off
)

// Resolve returns the toggle's value, or inherited for Inherit.
func (t Toggle) Resolve(inherited bool) bool {
	switch t {
	case On:
		return true
	case Off:
		return false
	default:
		return inherited
	}
}

// String returns the toggle state name.
func (t Toggle) String() string {
	switch t {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "inherit"
	}
}

// Bool converts a plain bool into an explicit Toggle.
func Bool(b bool) Toggle {
	if b {
		return On
	}
	return Off
}

type orientationKind uint8

const (
	orientNone orientationKind = iota
	orientFlip
	orientPerpendicular
	orientDegrees
)

// Orientation is a label rotation. The zero value means no rotation.
type Orientation struct {
	kind    orientationKind
	degrees float64
}

var (
	// Flip turns the label upside down (180 degrees).
	Flip = Orientation{kind: orientFlip}

	// Perpendicular stands the label across the path (90 degrees).
	Perpendicular = Orientation{kind: orientPerpendicular}
)

// Degrees returns an explicit rotation angle. Degrees(0) applies no
// rotation.
func Degrees(d float64) Orientation {
	return Orientation{kind: orientDegrees, degrees: d}
}

// ParseOrientation parses "flip", "perpendicular", a number of degrees, or
// the empty string (no rotation).
func ParseOrientation(s string) (Orientation, error) {
	switch s = strings.TrimSpace(strings.ToLower(s)); s {
	case "":
		return Orientation{}, nil
	case "flip":
		return Flip, nil
	case "perpendicular":
		return Perpendicular, nil
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Orientation{}, fmt.Errorf("textpath: invalid orientation %q", s)
	}
	return Degrees(d), nil
}

// IsZero reports whether the orientation applies no rotation.
func (o Orientation) IsZero() bool {
	return o.kind == orientNone
}

// String returns the orientation in the form ParseOrientation accepts.
func (o Orientation) String() string {
	switch o.kind {
	case orientFlip:
		return "flip"
	case orientPerpendicular:
		return "perpendicular"
	case orientDegrees:
		return strconv.FormatFloat(o.degrees, 'f', -1, 64)
	default:
		return ""
	}
}
