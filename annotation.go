package textpath

import "iter"

// Annotation is one label request: a text and its options. Annotations are
// values; equality covers both fields.
type Annotation struct {
	Text    string
	Options LabelOptions
}

// Equal reports whether a and b are the same request.
func (a Annotation) Equal(b Annotation) bool {
	return a.Text == b.Text && a.Options.Equal(b.Options)
}

// record ties an annotation to the node currently rendering it.
type record struct {
	ann  Annotation
	node LabelNode
	offs []func() // event subscriptions on node
}

// Registry is the ordered set of annotations attached to one path.
// Insertion order is preserved so redraws stack labels deterministically.
type Registry struct {
	records []*record
}

// AddOrNoop appends the annotation (text, opts) unless an equal one is
// already stored. It reports whether the annotation was added.
func (r *Registry) AddOrNoop(text string, opts LabelOptions) bool {
	_, added := r.add(Annotation{Text: text, Options: opts})
	return added
}

func (r *Registry) add(a Annotation) (*record, bool) {
	for _, rec := range r.records {
		if rec.ann.Equal(a) {
			return rec, false
		}
	}
	a.Options = a.Options.clone()
	rec := &record{ann: a}
	r.records = append(r.records, rec)
	return rec, true
}

// Len returns the number of stored annotations.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}

// All iterates over the annotations in insertion order.
func (r *Registry) All() iter.Seq2[int, Annotation] {
	return func(yield func(int, Annotation) bool) {
		if r == nil {
			return
		}
		for i, rec := range r.records {
			a := rec.ann
			a.Options = a.Options.clone()
			if !yield(i, a) {
				return
			}
		}
	}
}

// Annotations returns a snapshot of the stored annotations in order.
func (r *Registry) Annotations() []Annotation {
	out := make([]Annotation, 0, r.Len())
	for _, a := range r.All() {
		out = append(out, a)
	}
	return out
}
