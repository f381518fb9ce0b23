package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font file.
// FontSource is heavyweight and should be shared across the application.
// It is read-only after creation and safe for concurrent use.
type FontSource struct {
	data []byte
	font *opentype.Font
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	var config sourceConfig
	for _, opt := range opts {
		opt(&config)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data: append([]byte(nil), data...),
		font: f,
		name: config.name,
	}
	if s.name == "" {
		if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
			s.name = name
		}
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// Data returns the raw font bytes. Callers must not modify them.
func (s *FontSource) Data() []byte {
	return s.data
}

// metrics returns the vertical metrics of the font at size pixels per em.
func (s *FontSource) metrics(size float64) Metrics {
	var buf sfnt.Buffer
	m, err := s.font.Metrics(&buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{Ascent: size * 0.8, Descent: size * 0.2}
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}
}

// floatToFixed converts a float64 to fixed.Int26_6 (6 fractional bits).
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
