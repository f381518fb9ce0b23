package text

import "github.com/gogpu/textpath/internal/lru"

// CachedMeasurer memoizes another Measurer. Overlays re-measure the same
// label strings on every redraw, so widths are looked up by text and style.
//
// CachedMeasurer is safe for concurrent use if the wrapped Measurer is.
type CachedMeasurer struct {
	m       Measurer
	widths  *lru.Cache[widthKey, float64]
	metrics *lru.Cache[Style, Metrics]
}

type widthKey struct {
	s  string
	st Style
}

// NewCachedMeasurer wraps m with a cache of up to capacity widths.
// A non-positive capacity selects a default.
func NewCachedMeasurer(m Measurer, capacity int) *CachedMeasurer {
	if c, ok := m.(*CachedMeasurer); ok {
		m = c.m
	}
	return &CachedMeasurer{
		m:       m,
		widths:  lru.New[widthKey, float64](capacity),
		metrics: lru.New[Style, Metrics](64),
	}
}

// Measure implements Measurer.
func (c *CachedMeasurer) Measure(s string, st Style) float64 {
	return c.widths.GetOrAdd(widthKey{s, st}, func() float64 {
		return c.m.Measure(s, st)
	})
}

// Metrics implements Measurer.
func (c *CachedMeasurer) Metrics(st Style) Metrics {
	return c.metrics.GetOrAdd(st, func() Metrics {
		return c.m.Metrics(st)
	})
}

// Unwrap returns the wrapped measurer.
func (c *CachedMeasurer) Unwrap() Measurer {
	return c.m
}

// Stats returns the width cache statistics.
func (c *CachedMeasurer) Stats() lru.Stats {
	return c.widths.Stats()
}
