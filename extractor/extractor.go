// Package extractor turns uploaded résumé documents into plain text.
// Each format is a strategy selected by MIME type.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned when no strategy handles the document.
	ErrUnsupportedFormat = errors.New("unsupported file type")

	// ErrCorruptDocument is returned when a container cannot be read.
	ErrCorruptDocument = errors.New("corrupt or unreadable document")
)

// Canonical MIME types of the supported formats
const (
	MIMEPDF    = "application/pdf"
	MIMEDOCX   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEDOC    = "application/msword"
	MIMEODT    = "application/vnd.oasis.opendocument.text"
	MIMEPNG    = "image/png"
	MIMEJPEG   = "image/jpeg"
	MIMEJPGAlt = "image/jpg"
)

// extensionMIME maps accepted file extensions to their canonical MIME type
var extensionMIME = map[string]string{
	".pdf":  MIMEPDF,
	".docx": MIMEDOCX,
	".doc":  MIMEDOC,
	".odt":  MIMEODT,
	".png":  MIMEPNG,
	".jpg":  MIMEJPEG,
	".jpeg": MIMEJPEG,
}

// Source is one document to extract.
type Source struct {
	Data     []byte
	MIMEType string
	Filename string
}

// Extractor converts a document of the supported MIME types into text.
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Extract returns the document's plain text.
	Extract(ctx context.Context, src *Source) (string, error)
}

// Dispatcher routes a Source to the extractor registered for its format.
type Dispatcher struct {
	byMIME map[string]Extractor
}

// NewDispatcher registers extractors by their MIME types. Later
// registrations win for overlapping types.
func NewDispatcher(extractors ...Extractor) *Dispatcher {
	d := &Dispatcher{byMIME: make(map[string]Extractor)}
	for _, e := range extractors {
		for _, m := range e.SupportedMIMETypes() {
			d.byMIME[m] = e
		}
	}
	return d
}

// NewDefault builds a dispatcher over the built-in strategies.
func NewDefault(image *Image) *Dispatcher {
	return NewDispatcher(NewPDF(), NewWord(), NewODT(), image)
}

// SupportedMIMETypes lists every MIME type the dispatcher accepts.
func (d *Dispatcher) SupportedMIMETypes() []string {
	out := make([]string, 0, len(d.byMIME))
	for m := range d.byMIME {
		out = append(out, m)
	}
	return out
}

// Extract detects the format of src and runs the matching extractor.
func (d *Dispatcher) Extract(ctx context.Context, src *Source) (string, error) {
	if src == nil {
		return "", fmt.Errorf("%w: empty source", ErrUnsupportedFormat)
	}
	format := DetectFormat(src.MIMEType, src.Filename)
	e, ok := d.byMIME[format]
	if !ok {
		return "", fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, src.Filename, src.MIMEType)
	}

	routed := *src
	routed.MIMEType = format
	return e.Extract(ctx, &routed)
}

// DetectFormat returns the canonical MIME type for a declared MIME type
// and filename. A recognised MIME type wins; otherwise the extension
// decides. Returns "" when neither is recognised.
func DetectFormat(mimeType, filename string) string {
	if m := normalizeMIME(mimeType); m != "" {
		if m == MIMEJPGAlt {
			return MIMEJPEG
		}
		if isKnownMIME(m) {
			return m
		}
	}
	return extensionMIME[strings.ToLower(filepath.Ext(filename))]
}

// IsSupported reports whether a file would be accepted by MIME type or
// extension.
func IsSupported(mimeType, filename string) bool {
	return DetectFormat(mimeType, filename) != ""
}

func normalizeMIME(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		return parsed
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

func isKnownMIME(m string) bool {
	for _, known := range extensionMIME {
		if m == known {
			return true
		}
	}
	return m == MIMEJPGAlt
}
