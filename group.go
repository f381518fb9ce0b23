package textpath

import (
	"reflect"
	"slices"
)

// Group is a collection of layers that share label requests. Layers that
// do not implement TextSetter are kept but skipped by SetText.
type Group struct {
	layers []any
}

// NewGroup creates a group holding layers.
func NewGroup(layers ...any) *Group {
	g := &Group{}
	g.Add(layers...)
	return g
}

// Add appends layers not already in the group.
func (g *Group) Add(layers ...any) *Group {
	for _, l := range layers {
		if l == nil || slices.ContainsFunc(g.layers, func(m any) bool { return sameLayer(m, l) }) {
			continue
		}
		g.layers = append(g.layers, l)
	}
	return g
}

// Remove drops a layer from the group.
func (g *Group) Remove(layer any) *Group {
	g.layers = slices.DeleteFunc(g.layers, func(l any) bool { return sameLayer(l, layer) })
	return g
}

// sameLayer reports whether a and b are the same member. Values that
// cannot be compared with == are never equal.
func sameLayer(a, b any) bool {
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

// Layers returns the group's members in insertion order.
func (g *Group) Layers() []any {
	return slices.Clone(g.layers)
}

// SetText sends the label request to every member that accepts one.
func (g *Group) SetText(text string, opts LabelOptions) *Group {
	for _, l := range g.layers {
		if ts, ok := l.(TextSetter); ok {
			ts.ApplyText(text, opts)
		}
	}
	return g
}

// ApplyText implements TextSetter so groups can nest.
func (g *Group) ApplyText(text string, opts LabelOptions) {
	g.SetText(text, opts)
}
