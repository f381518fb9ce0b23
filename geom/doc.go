// Package geom holds the vector geometry that labels are laid out against.
//
// It provides a small Path builder (move, line, quadratic and cubic Bezier
// segments), arc-length and bounding-box measurement, flattening into an
// arc-length parameterised Polyline, and a parser for SVG path data.
//
// Coordinates follow the usual screen convention: origin at top-left, X grows
// right, Y grows down. Angles are in radians.
package geom
