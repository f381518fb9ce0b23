package text

import (
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"
)

// Measurer reports the rendered advance of strings.
// A zero result means the string cannot be measured (empty text, missing font).
type Measurer interface {
	// Measure returns the advance width of s in pixels under st.
	Measure(s string, st Style) float64

	// Metrics returns the vertical metrics for st.
	Metrics(st Style) Metrics
}

// MeasurerFactory builds a Measurer over a font collection.
type MeasurerFactory func(c *Collection) Measurer

var (
	registryMu sync.RWMutex
	registry   = map[string]MeasurerFactory{
		"advance":  func(c *Collection) Measurer { return NewAdvanceMeasurer(c) },
		"shaping":  func(c *Collection) Measurer { return NewShapingMeasurer(c) },
		"freetype": func(c *Collection) Measurer { return NewFreetypeMeasurer(c) },
	}
)

// DefaultMeasurer is the name of the backend used when none is chosen.
const DefaultMeasurer = "advance"

// RegisterMeasurer makes a measurement backend available to NewMeasurer.
func RegisterMeasurer(name string, f MeasurerFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
}

// Measurers returns the registered backend names in sorted order.
func Measurers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewMeasurer returns the backend registered under name. An empty name
// selects DefaultMeasurer; a nil collection selects DefaultCollection.
func NewMeasurer(name string, c *Collection) (Measurer, error) {
	if name == "" {
		name = DefaultMeasurer
	}
	if c == nil {
		c = DefaultCollection()
	}
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeasurer, name)
	}
	return f(c), nil
}

// spacing returns the extra advance letter-spacing adds to s.
func spacing(s string, st Style) float64 {
	return st.LetterSpacing * float64(utf8.RuneCountInString(s))
}
