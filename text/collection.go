package text

import (
	"maps"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// Collection resolves font-family names to font sources.
// Lookups for unknown families return the fallback source.
type Collection struct {
	mu       sync.RWMutex
	families map[string]*FontSource
	fallback *FontSource
}

// NewCollection creates a Collection that falls back to the given source.
func NewCollection(fallback *FontSource) *Collection {
	c := &Collection{
		families: make(map[string]*FontSource),
		fallback: fallback,
	}
	c.Register(fallback)
	return c
}

// Register adds a source under its own name and any aliases.
// Names are matched case-insensitively.
func (c *Collection) Register(src *FontSource, aliases ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, name := range append([]string{src.Name()}, aliases...) {
		if name == "" {
			continue
		}
		c.families[strings.ToLower(name)] = src
	}
}

// Lookup returns the source registered for family, or the fallback.
func (c *Collection) Lookup(family string) *FontSource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if src, ok := c.families[strings.ToLower(family)]; ok {
		return src
	}
	return c.fallback
}

var (
	defaultOnce       sync.Once
	defaultCollection *Collection
)

// DefaultCollection returns a shared Collection backed by the embedded Go
// Regular font, also registered as "sans-serif".
func DefaultCollection() *Collection {
	defaultOnce.Do(func() {
		src, err := NewFontSource(goregular.TTF)
		if err != nil {
			// The embedded font is known to parse.
			panic(err)
		}
		defaultCollection = NewCollection(src)
		defaultCollection.Register(src, "sans-serif", "Go")
	})
	return defaultCollection
}

// Clone returns a collection with the same families that can be extended
// without affecting c.
func (c *Collection) Clone() *Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Collection{
		families: maps.Clone(c.families),
		fallback: c.fallback,
	}
}
