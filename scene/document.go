package scene

import (
	"fmt"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/geom"
)

// Document is the decoded form of a scene file.
type Document struct {
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	Measurer string  `yaml:"measurer" toml:"measurer"`

	// PointerEvents overrides the canvas default (on).
	PointerEvents *bool `yaml:"pointer_events" toml:"pointer_events"`

	Fonts  []Font  `yaml:"fonts" toml:"fonts"`
	Paths  []Path  `yaml:"paths" toml:"paths"`
	Labels []Label `yaml:"labels" toml:"labels"`

	dir string
}

// Font registers a font file under extra family names.
type Font struct {
	File    string   `yaml:"file" toml:"file"`
	Name    string   `yaml:"name" toml:"name"`
	Aliases []string `yaml:"aliases" toml:"aliases"`
}

// Path is one path element and its labels. Exactly one of D and Points
// gives the geometry.
type Path struct {
	ID          string      `yaml:"id" toml:"id"`
	D           string      `yaml:"d" toml:"d"`
	Points      [][]float64 `yaml:"points" toml:"points"`
	Stroke      string      `yaml:"stroke" toml:"stroke"`
	Weight      float64     `yaml:"weight" toml:"weight"`
	Interactive *bool       `yaml:"interactive" toml:"interactive"`
	Labels      []Label     `yaml:"labels" toml:"labels"`
}

// Label is one label request.
type Label struct {
	Text        string            `yaml:"text" toml:"text"`
	Repeat      bool              `yaml:"repeat" toml:"repeat"`
	Fill        string            `yaml:"fill" toml:"fill"`
	Attributes  map[string]string `yaml:"attributes" toml:"attributes"`
	Below       bool              `yaml:"below" toml:"below"`
	Center      bool              `yaml:"center" toml:"center"`
	Offset      *float64          `yaml:"offset" toml:"offset"`
	OffsetX     *float64          `yaml:"offset_x" toml:"offset_x"`
	Orientation string            `yaml:"orientation" toml:"orientation"`
	Interactive *bool             `yaml:"interactive" toml:"interactive"`
}

// Options converts the label to overlay options.
func (l Label) Options() (textpath.LabelOptions, error) {
	orient, err := textpath.ParseOrientation(l.Orientation)
	if err != nil {
		return textpath.LabelOptions{}, err
	}
	opts := textpath.LabelOptions{
		Repeat:      l.Repeat,
		FillColor:   l.Fill,
		Attributes:  l.Attributes,
		Below:       l.Below,
		Center:      l.Center,
		Offset:      l.Offset,
		OffsetX:     l.OffsetX,
		Orientation: orient,
	}
	if l.Interactive != nil {
		opts.Interactive = textpath.Bool(*l.Interactive)
	}
	return opts, nil
}

// Geometry returns the path shape.
func (p Path) Geometry() (*geom.Path, error) {
	switch {
	case p.D != "" && len(p.Points) > 0:
		return nil, fmt.Errorf("%w: both d and points given", ErrInvalidScene)
	case p.D != "":
		return geom.ParsePathData(p.D)
	case len(p.Points) < 2:
		return nil, fmt.Errorf("%w: path needs d or at least two points", ErrInvalidScene)
	}
	pts := make([]geom.Point, len(p.Points))
	for i, xy := range p.Points {
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates", ErrInvalidScene, i, len(xy))
		}
		pts[i] = geom.Pt(xy[0], xy[1])
	}
	return geom.Polyline(pts...), nil
}

// Validate checks geometry, label text and orientations, and that path
// ids are unique.
func (d *Document) Validate() error {
	ids := make(map[string]int)
	for i, p := range d.Paths {
		if p.ID != "" {
			if j, dup := ids[p.ID]; dup {
				return fmt.Errorf("%w: paths %d and %d share id %q", ErrInvalidScene, j, i, p.ID)
			}
			ids[p.ID] = i
		}
		if _, err := p.Geometry(); err != nil {
			return fmt.Errorf("path %d: %w", i, err)
		}
		if err := validateLabels(p.Labels); err != nil {
			return fmt.Errorf("path %d: %w", i, err)
		}
	}
	for i, f := range d.Fonts {
		if f.File == "" {
			return fmt.Errorf("%w: font %d has no file", ErrInvalidScene, i)
		}
	}
	return validateLabels(d.Labels)
}

func validateLabels(labels []Label) error {
	for i, l := range labels {
		if l.Text == "" {
			return fmt.Errorf("%w: label %d has no text", ErrInvalidScene, i)
		}
		if _, err := l.Options(); err != nil {
			return fmt.Errorf("%w: label %d: %w", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// key identifies path i across reloads: its id, or its position among
// the scene's paths when it has none.
func (p Path) key(i int) string {
	if p.ID != "" {
		return p.ID
	}
	return fmt.Sprintf("#%d", i)
}
