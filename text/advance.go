package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// AdvanceMeasurer sums glyph advances and pair kerning from the font's
// tables. It is the cheapest backend and needs no shaping engine.
type AdvanceMeasurer struct {
	fonts *Collection
}

// NewAdvanceMeasurer creates an AdvanceMeasurer over c.
func NewAdvanceMeasurer(c *Collection) *AdvanceMeasurer {
	return &AdvanceMeasurer{fonts: c}
}

// Measure implements Measurer.
func (m *AdvanceMeasurer) Measure(s string, st Style) float64 {
	if s == "" {
		return 0
	}
	src := m.fonts.Lookup(st.Family)
	if src == nil {
		return 0
	}

	var buf sfnt.Buffer
	ppem := floatToFixed(st.Size)
	total := 0.0
	prev := sfnt.GlyphIndex(0)
	for i, r := range s {
		gid, err := src.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := src.font.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err == nil {
			total += fixedToFloat(adv)
		}
		if i > 0 && prev != 0 && gid != 0 {
			// Fonts without a kern table report ErrNotFound; ignore it.
			if k, err := src.font.Kern(&buf, prev, gid, ppem, font.HintingNone); err == nil {
				total += fixedToFloat(k)
			}
		}
		prev = gid
	}
	return total + spacing(s, st)
}

// Metrics implements Measurer.
func (m *AdvanceMeasurer) Metrics(st Style) Metrics {
	src := m.fonts.Lookup(st.Family)
	if src == nil {
		return Metrics{}
	}
	return src.metrics(st.Size)
}
