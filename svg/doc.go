// Package svg is an in-memory SVG canvas for textpath overlays.
//
// A Document holds path elements and the label nodes laid along them, in
// stacking order. Paths are textpath hosts: adding one to a Document,
// reshaping it, raising it and removing it fire the lifecycle hooks an
// Overlay follows. The finished drawing is serialized with WriteTo.
//
//	doc := svg.NewDocument(svg.WithSize(400, 200))
//	road := svg.NewPath(geom.Polyline(geom.Pt(10, 100), geom.Pt(390, 100)))
//	labels := textpath.New(road)
//	if err := doc.AddPath(road); err != nil {
//		return err
//	}
//	labels.SetText("Main St", textpath.LabelOptions{Center: true})
//	doc.WriteTo(os.Stdout)
package svg
