package textpath

// attach handles the host being added to canvas c.
func (o *Overlay) attach(c Canvas) {
	if o.state != Detached {
		o.teardownAll()
	}
	o.canvas = c
	o.state = Attached
	Logger().Info("textpath: attached", "path", o.host.ID(), "labels", o.reg.Len())

	if !c.SupportsVector() {
		Logger().Warn("textpath: canvas cannot render vector text; labels stay stored",
			"path", o.host.ID())
		return
	}
	o.materializeAll()
}

// detach handles the host being removed from its canvas. Stored
// annotations survive so a later attach restores the labels.
func (o *Overlay) detach() {
	if o.state == Detached {
		return
	}
	o.teardownAll()
	o.canvas = nil
	o.state = Detached
	Logger().Info("textpath: detached", "path", o.host.ID())
}

// redraw rebuilds every label after a geometry or stacking change. Old
// nodes are removed before new ones are built so the rendered set always
// matches the registry.
func (o *Overlay) redraw() {
	if o.state != Attached {
		return
	}
	o.state = Updating
	o.teardownAll()
	o.materializeAll()
	o.state = Attached
	Logger().Debug("textpath: redrawn", "path", o.host.ID(), "labels", o.reg.Len())
}

// clear removes rendered nodes and forgets every annotation.
func (o *Overlay) clear() {
	o.teardownAll()
	o.reg = nil
}

// renderable returns the container labels can be materialized into.
func (o *Overlay) renderable() (Container, bool) {
	if o.state == Detached || o.canvas == nil || !o.canvas.SupportsVector() {
		return nil, false
	}
	ct, ok := o.canvas.Container()
	if !ok {
		Logger().Warn("textpath: canvas container unavailable", "path", o.host.ID())
	}
	return ct, ok
}

func (o *Overlay) materializeAll() {
	if o.reg == nil {
		return
	}
	ct, ok := o.renderable()
	if !ok {
		return
	}
	for _, rec := range o.reg.records {
		o.materialize(ct, rec)
	}
}

// materialize builds, places and inserts the node for one annotation.
func (o *Overlay) materialize(ct Container, rec *record) {
	c := o.canvas
	opts := rec.ann.Options
	length := o.host.TotalLength()
	measure := func(s string) float64 {
		return c.MeasureText(s, opts.Attributes)
	}
	pl := ComputePlacement(rec.ann, length, o.host.StrokeWidth(), measure)

	node := c.NewLabel(o.host.ID())
	node.SetAttr("dy", formatFloat(pl.DY))
	node.SetAttr("fill", opts.fill())
	for name, value := range opts.Attributes {
		node.SetAttr(name, value)
	}
	node.SetText(pl.Text)

	if opts.Below {
		ct.InsertFirst(node)
	} else {
		ct.Append(node)
	}

	if pl.HasDX {
		node.SetAttr("dx", formatFloat(pl.DX))
	}
	if pl.Rotate {
		pivot := RotationPivot(c.BoundingBox(node))
		node.SetAttr("transform", RotateTransform(pl.Angle, pivot))
	}

	rec.node = node
	if opts.Interactive.Resolve(o.host.Interactive()) && c.SupportsPointer() {
		rec.offs = o.proxy(node)
	}

	Logger().Debug("textpath: label materialized",
		"path", o.host.ID(),
		"length", length,
		"copies", pl.Copies,
		"dx", pl.DX,
		"dy", pl.DY,
		"angle", pl.Angle)
}

// teardown removes one annotation's node. A missing container means the
// canvas already dropped its children; the node is simply forgotten.
func (o *Overlay) teardown(ct Container, ok bool, rec *record) {
	for _, off := range rec.offs {
		off()
	}
	rec.offs = nil
	if rec.node != nil && ok {
		ct.Remove(rec.node)
	}
	rec.node = nil
}

func (o *Overlay) teardownAll() {
	if o.reg == nil {
		return
	}
	var ct Container
	var ok bool
	if o.canvas != nil {
		ct, ok = o.canvas.Container()
	}
	for _, rec := range o.reg.records {
		o.teardown(ct, ok, rec)
	}
}
