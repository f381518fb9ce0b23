package text

// Metrics holds vertical font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent float64
}

// Height returns ascent plus descent.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}
