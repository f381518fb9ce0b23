package textpath

// State is the render state of an Overlay.
type State uint8

const (
	// Detached: the path is not on a canvas; requests are only stored.
	Detached State = iota

	// Attached: rendered nodes match the registry.
	Attached

	// Updating: a redraw is tearing down and rebuilding nodes.
	Updating
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Detached:
		return "detached"
	case Attached:
		return "attached"
	case Updating:
		return "updating"
	default:
		return "unknown"
	}
}

// TextSetter is implemented by layers that accept label requests, so
// groups can fan a request out to them.
type TextSetter interface {
	ApplyText(text string, opts LabelOptions)
}

// Overlay manages the text labels of one path. It subscribes to the host's
// lifecycle hooks and keeps exactly one rendered node per stored annotation
// while the path is attached to a vector canvas.
//
// An Overlay is not safe for concurrent use.
type Overlay struct {
	host        Host
	reg         *Registry // nil until the first label request
	canvas      Canvas
	state       State
	unsubscribe func()
}

// New creates the label overlay of host. If the host is already on a
// canvas, the overlay attaches immediately.
func New(host Host) *Overlay {
	o := &Overlay{host: host}
	o.unsubscribe = host.Subscribe(Hooks{
		OnAttach:         o.attach,
		OnDetach:         o.detach,
		OnGeometryChange: o.redraw,
		OnRaise:          o.redraw,
	})
	if c := host.Canvas(); c != nil {
		o.attach(c)
	}
	return o
}

// Host returns the path this overlay labels.
func (o *Overlay) Host() Host {
	return o.host
}

// State returns the current render state.
func (o *Overlay) State() State {
	return o.state
}

// Registry returns the stored annotations, or nil before the first request.
func (o *Overlay) Registry() *Registry {
	return o.reg
}

// Annotations returns a snapshot of the stored annotations in order.
func (o *Overlay) Annotations() []Annotation {
	return o.reg.Annotations()
}

// Nodes returns the currently rendered label nodes in annotation order.
func (o *Overlay) Nodes() []LabelNode {
	var nodes []LabelNode
	if o.reg == nil {
		return nodes
	}
	for _, rec := range o.reg.records {
		if rec.node != nil {
			nodes = append(nodes, rec.node)
		}
	}
	return nodes
}

// SetText requests a label. Repeating an identical request is a no-op.
// Empty text removes every label of the path, rendered and stored.
//
// Requests made before the path is attached to a vector canvas are stored
// and rendered on attach.
func (o *Overlay) SetText(text string, opts LabelOptions) *Overlay {
	if text == "" {
		o.clear()
		return o
	}
	if o.reg == nil {
		o.reg = &Registry{}
	}
	rec, added := o.reg.add(Annotation{Text: text, Options: opts})
	if !added {
		return o
	}

	ct, ok := o.renderable()
	if !ok {
		Logger().Debug("textpath: label stored for later",
			"path", o.host.ID(), "state", o.state.String())
		return o
	}
	o.materialize(ct, rec)
	return o
}

// ApplyText implements TextSetter.
func (o *Overlay) ApplyText(text string, opts LabelOptions) {
	o.SetText(text, opts)
}

// Close removes every label and stops following the host's lifecycle.
func (o *Overlay) Close() {
	o.clear()
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
	o.canvas = nil
	o.state = Detached
}
