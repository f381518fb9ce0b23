package text

import (
	"strconv"
	"strings"
)

// DefaultSize is the font size in pixels used when no font-size is given.
const DefaultSize = 16

// Style is the subset of presentation attributes that affects text advance.
type Style struct {
	Family        string
	Size          float64
	LetterSpacing float64
}

// ParseStyle extracts a Style from SVG presentation attributes
// (font-family, font-size, letter-spacing). Unknown or malformed values fall
// back to defaults.
func ParseStyle(attrs map[string]string) Style {
	st := Style{Size: DefaultSize}
	if v, ok := attrs["font-family"]; ok {
		st.Family = firstFamily(v)
	}
	if v, ok := attrs["font-size"]; ok {
		if size, ok := parseLength(v, DefaultSize); ok && size > 0 {
			st.Size = size
		}
	}
	if v, ok := attrs["letter-spacing"]; ok {
		if ls, ok := parseLength(v, st.Size); ok {
			st.LetterSpacing = ls
		}
	}
	return st
}

// firstFamily returns the first entry of a CSS font-family list, unquoted.
func firstFamily(v string) string {
	name, _, _ := strings.Cut(v, ",")
	return strings.Trim(strings.TrimSpace(name), `"'`)
}

// parseLength parses a CSS length in px, pt or em (relative to em) units.
// Unitless values are pixels; "normal" is zero.
func parseLength(v string, em float64) (float64, bool) {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "normal" {
		return 0, true
	}
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	case strings.HasSuffix(v, "pt"):
		v = strings.TrimSuffix(v, "pt")
		scale = 4.0 / 3.0
	case strings.HasSuffix(v, "em"):
		v = strings.TrimSuffix(v, "em")
		scale = em
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f * scale, true
}
