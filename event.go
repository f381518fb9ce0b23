package textpath

// EventKind identifies a pointer interaction.
type EventKind uint8

const (
	Click EventKind = iota + 1
	DoubleClick
	MouseDown
	MouseOver
	MouseMove
	MouseOut
	ContextMenu
)

// String returns the DOM name of the event kind.
func (k EventKind) String() string {
	switch k {
	case Click:
		return "click"
	case DoubleClick:
		return "dblclick"
	case MouseDown:
		return "mousedown"
	case MouseOver:
		return "mouseover"
	case MouseMove:
		return "mousemove"
	case MouseOut:
		return "mouseout"
	case ContextMenu:
		return "contextmenu"
	default:
		return "unknown"
	}
}

// PointerEvents lists the event kinds forwarded from labels to their path.
var PointerEvents = []EventKind{
	Click, DoubleClick, MouseDown, MouseOver, MouseMove, MouseOut, ContextMenu,
}

// Event is a pointer event. Labels forward the exact payload they receive,
// so handlers cannot tell a click on the label from a click on the path.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Button int
	Target any
}
