package descriptor

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// WriteTo writes the descriptor as XML, one element per line. Empty values
// are written as self-closing elements.
func (d Descriptor) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	buf.WriteString("<" + RootElement + ">\n")
	for _, f := range d.Fields {
		if f.Value == "" {
			fmt.Fprintf(&buf, "<%s />\n", f.Name)
			continue
		}
		fmt.Fprintf(&buf, "<%s>", f.Name)
		if err := xml.EscapeText(&buf, []byte(f.Value)); err != nil {
			return 0, err
		}
		fmt.Fprintf(&buf, "</%s>\n", f.Name)
	}
	buf.WriteString("</" + RootElement + ">")

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

type xmlDocument struct {
	XMLName xml.Name   `xml:"GKEYINFO"`
	Fields  []xmlField `xml:",any"`
}

type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Read parses a descriptor document. A leading byte order mark is honored.
func Read(r io.Reader) (Descriptor, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var doc xmlDocument
	if err := xml.NewDecoder(decoded).Decode(&doc); err != nil {
		return Descriptor{}, fmt.Errorf("parsing descriptor: %w", err)
	}

	d := Descriptor{Fields: make([]Field, 0, len(doc.Fields))}
	for _, f := range doc.Fields {
		d.Fields = append(d.Fields, Field{Name: f.XMLName.Local, Value: f.Value})
	}
	return d, nil
}
