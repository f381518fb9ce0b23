package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// ShapingMeasurer measures text after HarfBuzz shaping via
// go-text/typesetting, so ligatures, kerning and complex scripts are
// accounted for. Paragraph direction is detected with the Unicode bidi
// algorithm.
//
// ShapingMeasurer caches parsed font.Font objects (which are thread-safe)
// and creates a lightweight font.Face per call. HarfbuzzShaper instances are
// pooled since they are not safe for concurrent use.
type ShapingMeasurer struct {
	fonts *Collection

	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewShapingMeasurer creates a ShapingMeasurer over c.
func NewShapingMeasurer(c *Collection) *ShapingMeasurer {
	return &ShapingMeasurer{
		fonts: c,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Measure implements Measurer.
func (m *ShapingMeasurer) Measure(s string, st Style) float64 {
	if s == "" {
		return 0
	}
	src := m.fonts.Lookup(st.Family)
	if src == nil {
		return 0
	}
	f, err := m.font(src)
	if err != nil {
		return 0
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: direction(s),
		Face:      font.NewFace(f),
		Size:      floatToFixed(st.Size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)

	adv := fixedToFloat(out.Advance)
	if adv < 0 {
		adv = -adv
	}
	return adv + spacing(s, st)
}

// Metrics implements Measurer.
func (m *ShapingMeasurer) Metrics(st Style) Metrics {
	src := m.fonts.Lookup(st.Family)
	if src == nil {
		return Metrics{}
	}
	return src.metrics(st.Size)
}

// font returns the cached go-text Font for src, parsing it on first use.
func (m *ShapingMeasurer) font(src *FontSource) (*font.Font, error) {
	m.mu.RLock()
	if f, ok := m.fontCache[src]; ok {
		m.mu.RUnlock()
		return f, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fontCache[src]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(src.Data()))
	if err != nil {
		return nil, err
	}
	m.fontCache[src] = face.Font
	return face.Font, nil
}

// direction resolves the paragraph direction of s.
func direction(s string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return di.DirectionLTR
	}
	if o.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r', '\u00a0':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
