// Package textpath overlays text labels along vector paths so the text
// follows the path's curvature, the way street names follow roads on a map.
//
// # Overview
//
// A host rendering engine owns the path geometry and the canvas. textpath
// attaches an Overlay to a path through narrow interfaces (Host, Canvas,
// Container, LabelNode) and keeps one rendered label node per requested
// annotation in sync with the path's lifecycle:
//
//   - attach: stored annotations are materialized
//   - geometry change or raise-to-front: labels are torn down and rebuilt
//   - detach: the path's label nodes are removed from the canvas
//
// # Quick Start
//
//	ov := textpath.New(path) // path implements textpath.Host
//	ov.SetText("Main Street", textpath.LabelOptions{Center: true})
//	ov.SetText("► ", textpath.LabelOptions{Repeat: true, Below: true})
//
//	// Remove every label from the path.
//	ov.SetText("", textpath.LabelOptions{})
//
// # Layout
//
// Layout is computed from the path's total length and the host's text
// measurement primitive: repeat-fill tiles the text ceil(L/m) times, center
// aligns the text midpoint with the path midpoint, offset shifts the baseline
// and orientation rotates the label around its own bounding-box center.
//
// # Concurrency
//
// textpath is single-threaded and event driven. Every operation completes
// synchronously inside the call that triggered it; Overlays must not be
// shared between goroutines without external synchronization.
//
// The svg sub-package provides a complete in-memory SVG host.
package textpath
