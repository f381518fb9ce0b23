package scene

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/svg"
	"github.com/gogpu/textpath/text"
)

// Scene is a built scene: a document with one labelled path per scene
// path.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	doc     *svg.Document
	order   []string
	entries map[string]*entry
	all     *textpath.Group
	global  []Label
}

type entry struct {
	path    *svg.Path
	overlay *textpath.Overlay
	desc    Path
}

// Build creates the document for d, adds every path and lays out its
// labels. Scene-level labels go to every path.
func Build(d *Document) (*Scene, error) {
	coll, err := d.collection()
	if err != nil {
		return nil, err
	}
	m, err := text.NewMeasurer(d.Measurer, coll)
	if err != nil {
		return nil, err
	}
	opts := []svg.Option{
		svg.WithMeasurer(text.NewCachedMeasurer(m, 0)),
		svg.WithSize(d.Width, d.Height),
	}
	if d.PointerEvents != nil {
		opts = append(opts, svg.WithPointerEvents(*d.PointerEvents))
	}

	s := &Scene{
		doc:     svg.NewDocument(opts...),
		entries: make(map[string]*entry),
		all:     textpath.NewGroup(),
	}
	for i, p := range d.Paths {
		if err := s.add(p.key(i), p, nil); err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
	}
	for _, l := range d.Labels {
		lo, err := l.Options()
		if err != nil {
			return nil, err
		}
		s.all.SetText(l.Text, lo)
	}
	s.global = slices.Clone(d.Labels)

	textpath.Logger().Info("scene: built",
		"paths", len(s.order), "labels", len(d.Labels), "measurer", d.Measurer)
	return s, nil
}

// Document returns the rendered document.
func (s *Scene) Document() *svg.Document { return s.doc }

// Path returns the path element for a scene path id.
func (s *Scene) Path(id string) (*svg.Path, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return e.path, true
}

// Overlay returns the label overlay of a scene path id.
func (s *Scene) Overlay(id string) (*textpath.Overlay, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return e.overlay, true
}

// SetText sends a label request to every path of the scene.
func (s *Scene) SetText(text string, opts textpath.LabelOptions) {
	s.all.SetText(text, opts)
}

// Update reconciles the scene with a reloaded document. Paths are
// matched by id, or by position when they have none. Matched paths take
// the new geometry and stroke; their labels are reapplied only when the
// requested set changed. Unmatched paths are removed or added.
//
// Fonts, measurer and document size are fixed at Build time.
func (s *Scene) Update(d *Document) error {
	keep := make(map[string]bool, len(d.Paths))
	for i, p := range d.Paths {
		key := p.key(i)
		keep[key] = true
		if _, ok := s.entries[key]; !ok {
			if err := s.add(key, p, d.Labels); err != nil {
				return fmt.Errorf("path %d: %w", i, err)
			}
			continue
		}
		if err := s.update(key, p, d.Labels); err != nil {
			return fmt.Errorf("path %d: %w", i, err)
		}
	}
	for _, key := range slices.Clone(s.order) {
		if !keep[key] {
			s.remove(key)
		}
	}
	s.global = slices.Clone(d.Labels)
	return nil
}

// add creates, attaches and labels one path.
func (s *Scene) add(key string, p Path, global []Label) error {
	g, err := p.Geometry()
	if err != nil {
		return err
	}
	path := svg.NewPath(g, pathOptions(p)...)
	ov := textpath.New(path)
	if err := s.doc.AddPath(path); err != nil {
		return err
	}
	if err := apply(ov, p.Labels, global); err != nil {
		return err
	}
	s.entries[key] = &entry{path: path, overlay: ov, desc: p}
	s.order = append(s.order, key)
	s.all.Add(ov)
	return nil
}

func (s *Scene) update(key string, p Path, global []Label) error {
	e := s.entries[key]
	g, err := p.Geometry()
	if err != nil {
		return err
	}
	if p.Stroke != e.desc.Stroke || p.Weight != e.desc.Weight || !sameBool(p.Interactive, e.desc.Interactive) {
		// Stroke and interactivity are fixed per element; replace it.
		s.remove(key)
		return s.add(key, p, global)
	}
	e.path.SetGeometry(g)

	want, err := annotations(p.Labels, global)
	if err != nil {
		return err
	}
	if !slices.EqualFunc(want, e.overlay.Annotations(), textpath.Annotation.Equal) {
		e.overlay.SetText("", textpath.LabelOptions{})
		for _, a := range want {
			e.overlay.SetText(a.Text, a.Options)
		}
		textpath.Logger().Debug("scene: labels replaced", "path", key, "labels", len(want))
	}
	e.desc = p
	return nil
}

func (s *Scene) remove(key string) {
	e, ok := s.entries[key]
	if !ok {
		return
	}
	e.overlay.Close()
	s.doc.RemovePath(e.path)
	s.all.Remove(e.overlay)
	delete(s.entries, key)
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == key })
}

// apply sends own then global labels to ov.
func apply(ov *textpath.Overlay, own, global []Label) error {
	want, err := annotations(own, global)
	if err != nil {
		return err
	}
	for _, a := range want {
		ov.SetText(a.Text, a.Options)
	}
	return nil
}

// annotations returns the deduplicated requests a path ends up with.
func annotations(own, global []Label) ([]textpath.Annotation, error) {
	var reg textpath.Registry
	for _, l := range slices.Concat(own, global) {
		opts, err := l.Options()
		if err != nil {
			return nil, err
		}
		reg.AddOrNoop(l.Text, opts)
	}
	return reg.Annotations(), nil
}

func pathOptions(p Path) []svg.PathOption {
	opts := []svg.PathOption{
		svg.WithID(p.ID),
		svg.WithStroke(p.Stroke, p.Weight),
	}
	if p.Interactive != nil {
		opts = append(opts, svg.WithInteractive(*p.Interactive))
	}
	return opts
}

func sameBool(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// collection returns the bundled fonts plus the scene's own.
func (d *Document) collection() (*text.Collection, error) {
	if len(d.Fonts) == 0 {
		return text.DefaultCollection(), nil
	}
	coll := text.DefaultCollection().Clone()
	for _, f := range d.Fonts {
		file := f.File
		if !filepath.IsAbs(file) && d.dir != "" {
			file = filepath.Join(d.dir, file)
		}
		var opts []text.SourceOption
		if f.Name != "" {
			opts = append(opts, text.WithName(f.Name))
		}
		src, err := text.NewFontSourceFromFile(file, opts...)
		if err != nil {
			return nil, fmt.Errorf("scene: font %s: %w", f.File, err)
		}
		coll.Register(src, f.Aliases...)
	}
	return coll, nil
}
