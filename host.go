package textpath

import "github.com/gogpu/textpath/geom"

// Host is the path entity as exposed by the rendering engine. It owns the
// vector geometry; textpath only reads measurements from it and subscribes
// to its lifecycle.
type Host interface {
	// ID returns a stable identifier that label nodes use to reference the
	// path's geometry.
	ID() string

	// TotalLength returns the current rendered length of the path.
	TotalLength() float64

	// StrokeWidth returns the path's stroke width.
	StrokeWidth() float64

	// Interactive reports whether the path receives pointer events.
	Interactive() bool

	// Canvas returns the canvas the path is attached to, or nil.
	Canvas() Canvas

	// Subscribe registers lifecycle hooks and returns a function that
	// removes them.
	Subscribe(h Hooks) (unsubscribe func())

	// Fire emits ev on the path's own event stream.
	Fire(ev Event)
}

// Hooks are the lifecycle callbacks a Host invokes. Nil fields are skipped.
type Hooks struct {
	// OnAttach runs after the path has been added to c.
	OnAttach func(c Canvas)

	// OnDetach runs before the path is removed from its canvas.
	OnDetach func()

	// OnGeometryChange runs after the path's shape was recomputed.
	OnGeometryChange func()

	// OnRaise runs after the path was brought to the front.
	OnRaise func()
}

// Canvas is the vector-graphics surface hosting rendered nodes. It is
// shared by every path on the same map.
type Canvas interface {
	// SupportsVector reports whether label nodes can be rendered at all.
	SupportsVector() bool

	// SupportsPointer reports whether nodes can receive pointer events.
	SupportsPointer() bool

	// Container returns the node container, or false once the canvas has
	// torn itself down.
	Container() (Container, bool)

	// NewLabel creates an unattached label node whose text follows the
	// path identified by pathID.
	NewLabel(pathID string) LabelNode

	// MeasureText returns the rendered length of s under the given
	// presentation attributes, measured without attaching anything.
	MeasureText(s string, attrs map[string]string) float64

	// BoundingBox returns the untransformed bounding box of a placed node.
	BoundingBox(n LabelNode) geom.Rect
}

// Container holds the rendered nodes of a canvas in stacking order.
type Container interface {
	// Append adds n on top of every existing node.
	Append(n LabelNode)

	// InsertFirst adds n below every existing node.
	InsertFirst(n LabelNode)

	// Remove detaches n and reports whether it was present.
	Remove(n LabelNode) bool
}

// LabelNode is a rendered text run laid along a path.
type LabelNode interface {
	// SetText replaces the node's text content.
	SetText(s string)

	// SetAttr sets a presentation attribute (dx, dy, fill, transform, ...).
	SetAttr(name, value string)

	// Attr returns an attribute value.
	Attr(name string) (string, bool)

	// SetInteractive marks the node as a pointer target.
	SetInteractive(on bool)

	// On subscribes fn to events of kind and returns a function that
	// removes the subscription.
	On(kind EventKind, fn func(Event)) (off func())
}
