package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"slices"
	"sort"

	"github.com/gogpu/textpath/geom"
)

const namespace = "http://www.w3.org/2000/svg"

// InteractiveClass is the class of elements that receive pointer events.
const InteractiveClass = "textpath-interactive"

// WriteTo writes the document as indented SVG XML.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := xml.NewEncoder(cw)
	enc.Indent("", "  ")
	err := d.encode(enc)
	if cerr := enc.Close(); err == nil {
		err = cerr
	}
	return cw.n, err
}

// SaveSVG writes the document to the named file.
func (d *Document) SaveSVG(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	_, err = d.WriteTo(f)
	return err
}

func (d *Document) encode(enc *xml.Encoder) error {
	root := xml.StartElement{Name: xml.Name{Local: "svg"}}
	addAttr(&root.Attr, "xmlns", namespace)
	if d.width > 0 {
		addAttr(&root.Attr, "width", geom.FormatFloat(d.width))
	}
	if d.height > 0 {
		addAttr(&root.Attr, "height", geom.FormatFloat(d.height))
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, n := range d.nodes {
		var err error
		switch n := n.(type) {
		case *Path:
			err = encodePath(enc, n)
		case *Label:
			err = encodeLabel(enc, n)
		}
		if err != nil {
			return err
		}
	}
	return enc.EncodeToken(root.End())
}

func encodePath(enc *xml.Encoder, p *Path) error {
	se := xml.StartElement{Name: xml.Name{Local: "path"}}
	addAttr(&se.Attr, "id", p.id)
	addAttr(&se.Attr, "d", p.geom.PathData())
	addAttr(&se.Attr, "fill", "none")
	addAttr(&se.Attr, "stroke", p.color)
	addAttr(&se.Attr, "stroke-width", geom.FormatFloat(p.weight))
	if p.interactive {
		addAttr(&se.Attr, "class", InteractiveClass)
	}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	return enc.EncodeToken(se.End())
}

func encodeLabel(enc *xml.Encoder, l *Label) error {
	se := xml.StartElement{Name: xml.Name{Local: "text"}}
	names := make([]string, 0, len(l.attrs))
	for name := range l.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		addAttr(&se.Attr, name, l.attrs[name])
	}
	if l.interactive && !slices.Contains(names, "class") {
		addAttr(&se.Attr, "class", InteractiveClass)
	}

	tp := xml.StartElement{Name: xml.Name{Local: "textPath"}}
	addAttr(&tp.Attr, "href", "#"+l.pathID)

	for _, tok := range []xml.Token{se, tp, xml.CharData(l.text), tp.End(), se.End()} {
		if err := enc.EncodeToken(tok); err != nil {
			return err
		}
	}
	return nil
}

func addAttr(attr *[]xml.Attr, name, val string) {
	*attr = append(*attr, xml.Attr{Name: xml.Name{Local: name}, Value: val})
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
