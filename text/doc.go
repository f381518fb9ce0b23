// Package text measures how long a string renders under a set of style
// attributes. It is the measurement primitive label layout relies on.
//
// The pipeline keeps the usual separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Collection: maps font-family names to sources, with a fallback
//   - Measurer: pluggable backend turning (string, Style) into an advance
//
// Three backends are registered by name:
//
//   - "advance": per-glyph advances plus kerning via golang.org/x/image/font/sfnt
//   - "shaping": HarfBuzz shaping via github.com/go-text/typesetting
//   - "freetype": FreeType faces via github.com/golang/freetype/truetype
//
// # Example usage
//
//	m, err := text.NewMeasurer("shaping", text.DefaultCollection())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	st := text.ParseStyle(map[string]string{"font-size": "14px"})
//	width := m.Measure("Main Street", st)
package text
