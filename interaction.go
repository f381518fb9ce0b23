package textpath

// proxy tags node as interactive and forwards its pointer events to the
// host, returning the subscriptions so teardown can cancel them.
func (o *Overlay) proxy(node LabelNode) []func() {
	node.SetInteractive(true)
	offs := make([]func(), 0, len(PointerEvents))
	for _, kind := range PointerEvents {
		offs = append(offs, node.On(kind, o.host.Fire))
	}
	return offs
}
