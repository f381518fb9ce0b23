package text

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FreetypeMeasurer measures text with FreeType's TrueType rasterizer faces.
// Only TrueType outlines are supported; CFF fonts measure as zero.
type FreetypeMeasurer struct {
	fonts *Collection

	mu     sync.Mutex
	parsed map[*FontSource]*truetype.Font
	faces  map[faceKey]font.Face
}

type faceKey struct {
	src  *FontSource
	size float64
}

// NewFreetypeMeasurer creates a FreetypeMeasurer over c.
func NewFreetypeMeasurer(c *Collection) *FreetypeMeasurer {
	return &FreetypeMeasurer{
		fonts:  c,
		parsed: make(map[*FontSource]*truetype.Font),
		faces:  make(map[faceKey]font.Face),
	}
}

// Measure implements Measurer.
func (m *FreetypeMeasurer) Measure(s string, st Style) float64 {
	if s == "" {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	face := m.face(st)
	if face == nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, s)) + spacing(s, st)
}

// Metrics implements Measurer.
func (m *FreetypeMeasurer) Metrics(st Style) Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	face := m.face(st)
	if face == nil {
		return Metrics{}
	}
	fm := face.Metrics()
	return Metrics{
		Ascent:  fixedToFloat(fm.Ascent),
		Descent: fixedToFloat(fm.Descent),
	}
}

// face returns a cached face for st. m.mu must be held.
func (m *FreetypeMeasurer) face(st Style) font.Face {
	src := m.fonts.Lookup(st.Family)
	if src == nil {
		return nil
	}
	key := faceKey{src: src, size: st.Size}
	if f, ok := m.faces[key]; ok {
		return f
	}

	ttf, ok := m.parsed[src]
	if !ok {
		var err error
		ttf, err = truetype.Parse(src.Data())
		if err != nil {
			ttf = nil
		}
		m.parsed[src] = ttf
	}
	if ttf == nil {
		return nil
	}

	// At 72 DPI one point is one pixel, so Size is the pixel size.
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    st.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	m.faces[key] = f
	return f
}
