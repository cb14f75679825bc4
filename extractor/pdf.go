package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"

	pdf "github.com/ledongthuc/pdf"
)

// PDF extracts page text in document order.
type PDF struct{}

// NewPDF creates a PDF extractor.
func NewPDF() *PDF {
	return &PDF{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (p *PDF) SupportedMIMETypes() []string {
	return []string{MIMEPDF}
}

// Extract parses the PDF structure and concatenates the plain text of
// every page. The parser panics on some malformed inputs; those surface
// as ErrCorruptDocument.
func (p *PDF) Extract(_ context.Context, src *Source) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf parser: %v", ErrCorruptDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(src.Data), int64(len(src.Data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return collapseSeparators(buf.String()), nil
}
