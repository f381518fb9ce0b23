// Package scene loads labelled path drawings from YAML or TOML files and
// builds them into an svg.Document with one textpath.Overlay per path.
//
// A scene file lists paths, either as SVG path data or as polyline
// points, with the labels to lay along each. Labels listed at the top
// level apply to every path.
//
//	width: 400
//	height: 200
//	paths:
//	  - id: road
//	    d: "M10,100 C100,20 300,180 390,100"
//	    labels:
//	      - text: Main St
//	        center: true
//	        attributes: {font-size: 14px}
package scene
