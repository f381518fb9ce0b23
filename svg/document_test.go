package svg

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/geom"
	"github.com/gogpu/textpath/text"
)

// monoMeasurer measures every rune as unit pixels wide.
type monoMeasurer struct{ unit float64 }

func (m monoMeasurer) Measure(s string, st text.Style) float64 {
	return float64(utf8.RuneCountInString(s)) * m.unit
}

func (m monoMeasurer) Metrics(st text.Style) text.Metrics {
	return text.Metrics{Ascent: 8, Descent: 2}
}

func newTestDocument(opts ...Option) *Document {
	return NewDocument(append([]Option{WithMeasurer(monoMeasurer{unit: 10})}, opts...)...)
}

func horizontal(id string, length float64) *Path {
	return NewPath(geom.Polyline(geom.Pt(0, 0), geom.Pt(length, 0)), WithID(id))
}

func TestAddPathRendersStoredLabels(t *testing.T) {
	doc := newTestDocument()
	p := horizontal("road", 100)
	ov := textpath.New(p)
	ov.SetText("Main St", textpath.LabelOptions{Center: true})

	if len(doc.Labels()) != 0 {
		t.Fatal("label rendered before the path was added")
	}
	doc.AddPath(p)

	labels := doc.Labels()
	if len(labels) != 1 {
		t.Fatalf("rendered %d labels, want 1", len(labels))
	}
	l := labels[0]
	if l.PathID() != "road" {
		t.Errorf("PathID() = %q", l.PathID())
	}
	if l.Text() != "Main\u00a0St" {
		t.Errorf("Text() = %q", l.Text())
	}
	for name, want := range map[string]string{"dx": "15", "dy": "3", "fill": "black"} {
		if got, _ := l.Attr(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestBoundingBoxFollowsPath(t *testing.T) {
	doc := newTestDocument()
	doc.AddPath(horizontal("road", 100))

	n := doc.NewLabel("road")
	n.SetText("ab")
	n.SetAttr("dx", "10")
	n.SetAttr("dy", "3")

	got := doc.BoundingBox(n)
	want := geom.NewRect(geom.Pt(10, -5), geom.Pt(30, 5))
	if got != want {
		t.Errorf("BoundingBox() = %+v, want %+v", got, want)
	}

	if !doc.BoundingBox(doc.NewLabel("missing")).Empty() {
		t.Error("label of an unknown path should have an empty box")
	}
}

func TestOrientationRotatesAroundLabelCenter(t *testing.T) {
	doc := newTestDocument()
	p := horizontal("road", 100)
	doc.AddPath(p)
	textpath.New(p).SetText("Hi", textpath.LabelOptions{
		OffsetX:     textpath.Float(10),
		Orientation: textpath.Flip,
	})

	got, _ := doc.Labels()[0].Attr("transform")
	if got != "rotate(180 20 0)" {
		t.Errorf("transform = %q, want rotate(180 20 0)", got)
	}
}

func TestSetGeometryRedraws(t *testing.T) {
	doc := newTestDocument()
	p := horizontal("road", 100)
	doc.AddPath(p)
	textpath.New(p).SetText("ab", textpath.LabelOptions{Repeat: true})

	if got := doc.Labels()[0].Text(); got != strings.Repeat("ab", 5) {
		t.Fatalf("Text() = %q, want 5 copies", got)
	}

	p.SetGeometry(geom.Polyline(geom.Pt(0, 0), geom.Pt(50, 0)))
	labels := doc.Labels()
	if len(labels) != 1 {
		t.Fatalf("%d labels after reshape, want 1", len(labels))
	}
	if got := labels[0].Text(); got != strings.Repeat("ab", 3) {
		t.Errorf("Text() = %q, want 3 copies", got)
	}
	if p.TotalLength() != 50 {
		t.Errorf("TotalLength() = %v, want 50", p.TotalLength())
	}
}

func TestRemovePathKeepsAnnotations(t *testing.T) {
	doc := newTestDocument()
	p := horizontal("road", 100)
	ov := textpath.New(p)
	doc.AddPath(p)
	ov.SetText("Main", textpath.LabelOptions{})

	if !doc.RemovePath(p) {
		t.Fatal("RemovePath() = false")
	}
	if len(doc.Labels()) != 0 || len(doc.Paths()) != 0 {
		t.Fatalf("document still holds %d labels, %d paths", len(doc.Labels()), len(doc.Paths()))
	}
	if p.Canvas() != nil {
		t.Error("removed path still reports a canvas")
	}
	if len(ov.Annotations()) != 1 {
		t.Error("annotations lost on removal")
	}
	if doc.RemovePath(p) {
		t.Error("second RemovePath() = true")
	}

	doc.AddPath(p)
	if len(doc.Labels()) != 1 {
		t.Error("labels not restored on re-add")
	}
}

func TestDuplicatePathID(t *testing.T) {
	doc := newTestDocument()
	first, second := horizontal("road", 100), horizontal("road", 50)
	textpath.New(first).SetText("Hi", textpath.LabelOptions{Orientation: textpath.Flip})
	if err := doc.AddPath(first); err != nil {
		t.Fatal(err)
	}

	if err := doc.AddPath(second); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("AddPath(duplicate) error = %v, want ErrDuplicateID", err)
	}
	if len(doc.Paths()) != 1 || second.Canvas() != nil {
		t.Fatal("rejected path was added")
	}
	if doc.RemovePath(second) {
		t.Error("RemovePath() of a rejected path = true")
	}
	if doc.BoundingBox(doc.Labels()[0]).Width() == 0 {
		t.Error("label of the first path lost its bounding box")
	}

	doc.RemovePath(first)
	if err := doc.AddPath(second); err != nil {
		t.Errorf("AddPath() after the id was freed: %v", err)
	}
}

func TestBringToFrontRestacks(t *testing.T) {
	doc := newTestDocument()
	a, b := horizontal("a", 100), horizontal("b", 100)
	doc.AddPath(a)
	textpath.New(a).SetText("A", textpath.LabelOptions{})
	doc.AddPath(b)
	textpath.New(b).SetText("B", textpath.LabelOptions{})

	a.BringToFront()

	var order []string
	for _, n := range doc.nodes {
		switch n := n.(type) {
		case *Path:
			order = append(order, "path:"+n.ID())
		case *Label:
			order = append(order, "label:"+n.Text())
		}
	}
	want := "path:b label:B path:a label:A"
	if got := strings.Join(order, " "); got != want {
		t.Errorf("stacking = %s, want %s", got, want)
	}
}

func TestBelowInsertsUnderPaths(t *testing.T) {
	doc := newTestDocument()
	p := horizontal("road", 100)
	doc.AddPath(p)
	textpath.New(p).SetText("under", textpath.LabelOptions{Below: true})

	if _, ok := doc.nodes[0].(*Label); !ok {
		t.Errorf("first element is %T, want *Label", doc.nodes[0])
	}
}

func TestLabelEventsReachPath(t *testing.T) {
	doc := newTestDocument()
	p := horizontal("road", 100)
	var got []textpath.Event
	p.On(func(ev textpath.Event) { got = append(got, ev) })
	doc.AddPath(p)
	textpath.New(p).SetText("Main", textpath.LabelOptions{})

	l := doc.Labels()[0]
	if !l.IsInteractive() {
		t.Fatal("label of an interactive path should be interactive")
	}
	ev := textpath.Event{Kind: textpath.ContextMenu, X: 12, Y: 3, Button: 2}
	l.Dispatch(ev)
	if len(got) != 1 || got[0] != ev {
		t.Errorf("path received %+v, want [%+v]", got, ev)
	}
}

func TestNoPointerEvents(t *testing.T) {
	doc := newTestDocument(WithPointerEvents(false))
	p := horizontal("road", 100)
	fired := 0
	p.On(func(textpath.Event) { fired++ })
	doc.AddPath(p)
	textpath.New(p).SetText("Main", textpath.LabelOptions{Interactive: textpath.On})

	l := doc.Labels()[0]
	if l.IsInteractive() {
		t.Error("label interactive on a document without pointer events")
	}
	l.Dispatch(textpath.Event{Kind: textpath.Click})
	if fired != 0 {
		t.Error("event forwarded without pointer support")
	}
}

func TestNoVectorText(t *testing.T) {
	doc := newTestDocument(WithVectorText(false))
	p := horizontal("road", 100)
	ov := textpath.New(p)
	doc.AddPath(p)
	ov.SetText("Main", textpath.LabelOptions{})

	if len(doc.Labels()) != 0 {
		t.Error("labels rendered on a document without vector text")
	}
	if len(ov.Annotations()) != 1 {
		t.Error("request not stored")
	}
}

func TestCloseDropsLabels(t *testing.T) {
	doc := newTestDocument()
	p := horizontal("road", 100)
	ov := textpath.New(p)
	doc.AddPath(p)
	ov.SetText("one", textpath.LabelOptions{})

	doc.Close()
	if len(doc.Labels()) != 0 {
		t.Error("Close kept label nodes")
	}
	if len(doc.Paths()) != 1 {
		t.Error("Close dropped paths")
	}

	ov.SetText("two", textpath.LabelOptions{})
	p.SetGeometry(geom.Polyline(geom.Pt(0, 0), geom.Pt(10, 0)))
	if len(doc.Labels()) != 0 {
		t.Error("labels rendered into a closed document")
	}
	if len(ov.Annotations()) != 2 {
		t.Errorf("stored %d annotations, want 2", len(ov.Annotations()))
	}
}

func TestMovePathBetweenDocuments(t *testing.T) {
	d1, d2 := newTestDocument(), newTestDocument()
	p := horizontal("road", 100)
	textpath.New(p).SetText("Main", textpath.LabelOptions{})
	d1.AddPath(p)
	d2.AddPath(p)

	if len(d1.Labels()) != 0 || len(d1.Paths()) != 0 {
		t.Error("old document still holds the path or its labels")
	}
	if len(d2.Labels()) != 1 {
		t.Error("labels not rendered on the new document")
	}
	if p.Document() != d2 {
		t.Error("Document() does not report the new document")
	}
}

func TestDefaultPathID(t *testing.T) {
	a := NewPath(geom.Polyline(geom.Pt(0, 0), geom.Pt(1, 0)))
	b := NewPath(nil)
	if !strings.HasPrefix(a.ID(), "pathdef-") {
		t.Errorf("ID() = %q, want pathdef- prefix", a.ID())
	}
	if a.ID() == b.ID() {
		t.Error("default ids collide")
	}
	if b.TotalLength() != 0 {
		t.Errorf("empty path length = %v", b.TotalLength())
	}
}

func TestDefaultMeasurer(t *testing.T) {
	doc := NewDocument()
	short := doc.MeasureText("i", nil)
	long := doc.MeasureText("iiii", nil)
	if short <= 0 || long <= short {
		t.Errorf("MeasureText: i=%v iiii=%v", short, long)
	}
	big := doc.MeasureText("i", map[string]string{"font-size": "32px"})
	if big <= short {
		t.Errorf("font-size not honored: %v <= %v", big, short)
	}
}
