package textpath

import (
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func attachedOverlay(t *testing.T, length, unit float64) (*Overlay, *fakeHost, *fakeCanvas) {
	t.Helper()
	h := newFakeHost("pathdef-1", length)
	c := newFakeCanvas(unit)
	ov := New(h)
	h.attach(c)
	if ov.State() != Attached {
		t.Fatalf("State() = %v after attach, want attached", ov.State())
	}
	return ov, h, c
}

func TestSetTextIdempotent(t *testing.T) {
	ov, _, c := attachedOverlay(t, 100, 10)

	ov.SetText("Main", LabelOptions{Attributes: map[string]string{"font-size": "12"}})
	ov.SetText("Main", LabelOptions{Attributes: map[string]string{"font-size": "12"}})

	if n := ov.Registry().Len(); n != 1 {
		t.Errorf("stored %d annotations, want 1:\n%s", n, spew.Sdump(ov.Annotations()))
	}
	if n := len(c.children); n != 1 {
		t.Errorf("rendered %d nodes, want 1", n)
	}
}

func TestSetTextRendersNode(t *testing.T) {
	ov, _, c := attachedOverlay(t, 100, 10)
	ov.SetText("Main St", LabelOptions{
		FillColor:  "#336699",
		Attributes: map[string]string{"font-size": "14px", "font-weight": "bold"},
	})

	if len(c.children) != 1 {
		t.Fatalf("rendered %d nodes, want 1", len(c.children))
	}
	n := c.children[0].(*fakeNode)
	if n.pathID != "pathdef-1" {
		t.Errorf("node references %q, want the path id", n.pathID)
	}
	if n.text != "Main\u00a0St" {
		t.Errorf("text = %q, want non-breaking space", n.text)
	}
	checks := map[string]string{
		"dy":          "3", // stroke width
		"fill":        "#336699",
		"font-size":   "14px",
		"font-weight": "bold",
	}
	for name, want := range checks {
		if got, _ := n.Attr(name); got != want {
			t.Errorf("attr %s = %q, want %q", name, got, want)
		}
	}
	for _, name := range []string{"dx", "transform"} {
		if _, ok := n.Attr(name); ok {
			t.Errorf("attr %s set without center/offsetX/orientation", name)
		}
	}
	if n.interactive || n.listenerCount() != 0 {
		t.Error("non-interactive path produced an interactive label")
	}
}

func TestEndToEndRepeatAndCenter(t *testing.T) {
	ov, _, c := attachedOverlay(t, 100, 20)
	ov.SetText("A", LabelOptions{Repeat: true, Center: true})

	n := c.children[0].(*fakeNode)
	if n.text != "AAAAA" {
		t.Errorf("filled text = %q, want AAAAA", n.text)
	}
	// (100/2) - (measured("AAAAA")/2) = 50 - 50.
	if dx, _ := n.Attr("dx"); dx != "0" {
		t.Errorf("dx = %q, want 0", dx)
	}
	// The unit was measured on a throwaway string before anything was inserted.
	if len(c.measured) < 2 || c.measured[0] != "A" || c.measured[1] != "AAAAA" {
		t.Errorf("measurements = %q, want [A AAAAA]", c.measured)
	}
}

func TestOrientationTransform(t *testing.T) {
	tests := []struct {
		name string
		o    Orientation
		want string
	}{
		{"flip", Flip, "rotate(180 10 -3)"},
		{"perpendicular", Perpendicular, "rotate(90 10 -3)"},
		{"numeric", Degrees(37), "rotate(37 10 -3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ov, _, c := attachedOverlay(t, 100, 10)
			ov.SetText("Hi", LabelOptions{Orientation: tt.o})
			// bbox: x=0, y=3-12, w=20, h=12 -> center (10, -3).
			got, ok := c.children[0].(*fakeNode).Attr("transform")
			if !ok || got != tt.want {
				t.Errorf("transform = %q (%v), want %q", got, ok, tt.want)
			}
		})
	}
}

func TestSetTextBeforeAttachIsDeferred(t *testing.T) {
	h := newFakeHost("p", 100)
	ov := New(h)
	ov.SetText("one", LabelOptions{}).SetText("two", LabelOptions{Below: true})

	if ov.State() != Detached {
		t.Errorf("State() = %v, want detached", ov.State())
	}
	if ov.Registry().Len() != 2 {
		t.Fatalf("stored %d annotations, want 2", ov.Registry().Len())
	}

	c := newFakeCanvas(10)
	h.attach(c)
	if got := c.texts(); !slices.Equal(got, []string{"two", "one"}) {
		t.Errorf("rendered %q, want [two one] (below goes first)", got)
	}
}

func TestNewOnAttachedHost(t *testing.T) {
	h := newFakeHost("p", 100)
	c := newFakeCanvas(10)
	h.canvas = c

	ov := New(h)
	if ov.State() != Attached {
		t.Fatalf("State() = %v, want attached", ov.State())
	}
	ov.SetText("x", LabelOptions{})
	if len(c.children) != 1 {
		t.Errorf("rendered %d nodes, want 1", len(c.children))
	}
}

func TestClearRemovesEverything(t *testing.T) {
	ov, _, c := attachedOverlay(t, 100, 10)
	foreign := &fakeNode{text: "other subsystem"}
	c.Append(foreign)

	ov.SetText("a", LabelOptions{}).
		SetText("b", LabelOptions{Repeat: true}).
		SetText("c", LabelOptions{Below: true})
	if len(c.children) != 4 {
		t.Fatalf("rendered %d nodes, want 3 labels + 1 foreign", len(c.children))
	}

	ov.SetText("", LabelOptions{})
	if ov.Registry().Len() != 0 || len(ov.Annotations()) != 0 {
		t.Errorf("annotations survived clear: %v", ov.Annotations())
	}
	if len(c.children) != 1 || c.children[0] != foreign {
		t.Errorf("canvas after clear = %q, want only the foreign node", c.texts())
	}

	// Clearing an empty overlay is harmless.
	ov.SetText("", LabelOptions{})
}

func TestDetachRemovesOnlyOwnNodes(t *testing.T) {
	ov, h, c := attachedOverlay(t, 100, 10)
	before := &fakeNode{text: "before"}
	c.Append(before)
	ov.SetText("a", LabelOptions{}).SetText("b", LabelOptions{}).SetText("c", LabelOptions{})
	after := &fakeNode{text: "after"}
	c.Append(after)

	h.detach()

	if ov.State() != Detached {
		t.Errorf("State() = %v, want detached", ov.State())
	}
	if len(c.children) != 2 || c.children[0] != before || c.children[1] != after {
		t.Errorf("canvas after detach = %q, want [before after]", c.texts())
	}
	if len(ov.Nodes()) != 0 {
		t.Errorf("overlay still holds %d nodes", len(ov.Nodes()))
	}

	// Annotations survive a detach and come back on re-attach.
	h.attach(c)
	if got := c.texts(); !slices.Equal(got, []string{"before", "after", "a", "b", "c"}) {
		t.Errorf("canvas after re-attach = %q", got)
	}
}

func TestDetachWithoutContainer(t *testing.T) {
	ov, h, c := attachedOverlay(t, 100, 10)
	ov.SetText("a", LabelOptions{})

	c.closed = true
	h.detach()

	if ov.State() != Detached {
		t.Errorf("State() = %v, want detached", ov.State())
	}
	if len(ov.Nodes()) != 0 {
		t.Error("nodes should be forgotten when the container is gone")
	}
}

func TestRedrawDoesNotAccumulateNodes(t *testing.T) {
	ov, h, c := attachedOverlay(t, 100, 20)
	ov.SetText("A", LabelOptions{Repeat: true}).SetText("label", LabelOptions{Center: true})

	for i, length := range []float64{100, 140, 60, 200, 0} {
		h.reshape(length)
		if len(c.children) != 2 {
			t.Fatalf("redraw %d: %d nodes rendered, want 2", i, len(c.children))
		}
		if ov.State() != Attached {
			t.Fatalf("redraw %d: State() = %v", i, ov.State())
		}
	}

	// Last geometry had zero length: repeat fill is empty, centering still runs.
	if got := c.texts(); !slices.Equal(got, []string{"", "label"}) {
		t.Errorf("texts = %q, want [\"\" label]", got)
	}
	if dx, _ := c.children[1].(*fakeNode).Attr("dx"); dx != "-50" {
		t.Errorf("centered dx on zero-length path = %q, want -50", dx)
	}
}

func TestRedrawPicksUpNewLength(t *testing.T) {
	ov, h, c := attachedOverlay(t, 40, 20)
	ov.SetText("A", LabelOptions{Repeat: true})
	if c.texts()[0] != "AA" {
		t.Fatalf("initial fill = %q, want AA", c.texts()[0])
	}
	h.reshape(100)
	if c.texts()[0] != "AAAAA" {
		t.Errorf("fill after reshape = %q, want AAAAA", c.texts()[0])
	}
}

func TestRaiseRestacksInOrder(t *testing.T) {
	ov, h, c := attachedOverlay(t, 100, 10)
	ov.SetText("a", LabelOptions{}).SetText("b", LabelOptions{})
	other := &fakeNode{text: "other"}
	c.Append(other)

	h.raise()
	if got := c.texts(); !slices.Equal(got, []string{"other", "a", "b"}) {
		t.Errorf("canvas after raise = %q, want [other a b]", got)
	}
}

func TestRedrawWhileDetachedIsIgnored(t *testing.T) {
	h := newFakeHost("p", 100)
	ov := New(h)
	ov.SetText("a", LabelOptions{})
	h.reshape(50)
	h.raise()
	if ov.State() != Detached || len(ov.Nodes()) != 0 {
		t.Errorf("detached overlay rendered on redraw")
	}
}

func TestNonVectorCanvasStoresOnly(t *testing.T) {
	h := newFakeHost("p", 100)
	c := newFakeCanvas(10)
	c.vector = false
	ov := New(h)
	h.attach(c)

	ov.SetText("a", LabelOptions{})
	if len(c.children) != 0 {
		t.Errorf("non-vector canvas got %d nodes", len(c.children))
	}
	if ov.Registry().Len() != 1 {
		t.Error("request should still be stored")
	}

	// Moving to a vector canvas renders the stored request.
	h.detach()
	vc := newFakeCanvas(10)
	h.attach(vc)
	if len(vc.children) != 1 {
		t.Errorf("vector canvas got %d nodes, want 1", len(vc.children))
	}
}

func TestAttachToAnotherCanvasMovesLabels(t *testing.T) {
	ov, h, c1 := attachedOverlay(t, 100, 10)
	ov.SetText("a", LabelOptions{})

	c2 := newFakeCanvas(10)
	h.attach(c2)
	if len(c1.children) != 0 || len(c2.children) != 1 {
		t.Errorf("labels c1=%d c2=%d, want 0 and 1", len(c1.children), len(c2.children))
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	ov, h, c := attachedOverlay(t, 100, 10)
	ov.SetText("a", LabelOptions{})
	ov.Close()

	if h.subscribers() != 0 {
		t.Errorf("%d hooks still subscribed", h.subscribers())
	}
	if len(c.children) != 0 {
		t.Errorf("%d nodes left after Close", len(c.children))
	}
	h.reshape(10)
	if len(c.children) != 0 {
		t.Error("closed overlay reacted to a geometry change")
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		Detached: "detached",
		Attached: "attached",
		Updating: "updating",
		State(9): "unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
