package nml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Attr is one attribute of a serialized element, in emission order.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of a serialized entity tree. Name is the local name
// without the namespace prefix; the writer adds the prefix and the
// namespace declaration.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// Document is an ordered sequence of serialized entity trees. Namespace
// registration order fixes root order, so encoding the same namespace twice
// yields byte-identical output.
type Document struct {
	Roots []*Element
}

const (
	// NamespaceURI is the XML namespace of every emitted element.
	NamespaceURI = "http://schemas.ogf.org/nml/2013/05/base"

	nsPrefix = "nml"
)

// Encode writes the document as indented XML. Every root element carries
// the xmlns:nml declaration so each tree is independently well formed.
func (d *Document) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	for _, root := range d.Roots {
		if err := encodeElement(enc, root, true); err != nil {
			return fmt.Errorf("encoding %s: %w", root.Name, err)
		}
	}
	return enc.Flush()
}

// String renders the document to a string, for logs and tests. Encoding to
// a buffer cannot fail, so errors reduce to an empty string.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func encodeElement(enc *xml.Encoder, el *Element, root bool) error {
	start := xml.StartElement{Name: xml.Name{Local: nsPrefix + ":" + el.Name}}
	if root {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: "xmlns:" + nsPrefix},
			Value: NamespaceURI,
		})
	}
	for _, a := range el.Attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Name},
			Value: a.Value,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := encodeElement(enc, child, false); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
