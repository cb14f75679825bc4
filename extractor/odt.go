package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// textNS is the OpenDocument text namespace
const textNS = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"

// ODT extracts text from OpenDocument text files.
type ODT struct{}

// NewODT creates an ODT extractor.
func NewODT() *ODT {
	return &ODT{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (o *ODT) SupportedMIMETypes() []string {
	return []string{MIMEODT}
}

// Extract unzips the container, parses content.xml into a node tree and
// walks it. Paragraphs and headings each end with a line break, spans
// concatenate inline, and whitespace is collapsed at the end.
func (o *ODT) Extract(_ context.Context, src *Source) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(src.Data), int64(len(src.Data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	content, err := readZipEntry(reader, "content.xml")
	if err != nil {
		return "", err
	}

	root, err := parseTree(content)
	if err != nil {
		return "", fmt.Errorf("%w: content.xml: %v", ErrCorruptDocument, err)
	}

	var sb strings.Builder
	writeNode(&sb, root)
	return collapseSeparators(sb.String()), nil
}

// node is an element of a parsed XML document. Children preserve the
// interleaving of character data and nested elements.
type node struct {
	Name     xml.Name
	Children []child
}

// child is either character data or a nested element.
type child struct {
	Text string
	Elem *node
}

// parseTree builds the element tree rooted at the document element.
func parseTree(content []byte) (*node, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no root element")
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return parseElement(dec, start)
		}
	}
}

func parseElement(dec *xml.Decoder, start xml.StartElement) (*node, error) {
	n := &node{Name: start.Name}
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unexpected end of document inside <%s>", start.Name.Local)
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			elem, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child{Elem: elem})
		case xml.CharData:
			n.Children = append(n.Children, child{Text: string(t)})
		case xml.EndElement:
			return n, nil
		}
	}
}

// writeNode emits the text of n in document order.
func writeNode(sb *strings.Builder, n *node) {
	for _, c := range n.Children {
		if c.Elem == nil {
			sb.WriteString(c.Text)
			continue
		}

		if c.Elem.Name.Space != textNS {
			writeNode(sb, c.Elem)
			continue
		}

		switch c.Elem.Name.Local {
		case "p", "h":
			writeNode(sb, c.Elem)
			sb.WriteString("\n")
		case "s", "tab", "line-break":
			sb.WriteString(" ")
		default:
			// span, a, list, list-item and the like are inline or containers
			writeNode(sb, c.Elem)
		}
	}
}
