// Package export renders a ResumeData record as JSON, Markdown, PDF or ODT.
// Rendering is a pure function of the record.
package export

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/pivot/backend/models"
)

var (
	// ErrUnsupportedFormat is returned for a format outside json, md, pdf and odt.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrNoData is returned when there is no record to render.
	ErrNoData = errors.New("resume data is required")
)

// Supported formats
const (
	FormatJSON     = "json"
	FormatMarkdown = "md"
	FormatPDF      = "pdf"
	FormatODT      = "odt"
)

// documentTime stamps PDF metadata and ODT zip entries so repeated exports
// of the same record are byte-identical.
var documentTime = time.Now().UTC().Truncate(time.Second)

// File is a rendered export.
type File struct {
	Content     []byte
	ContentType string
	Filename    string
}

type renderer struct {
	contentType string
	render      func(*models.ResumeData) ([]byte, error)
}

var renderers = map[string]renderer{
	FormatJSON:     {contentType: "application/json", render: renderJSON},
	FormatMarkdown: {contentType: "text/markdown", render: renderMarkdown},
	FormatPDF:      {contentType: "application/pdf", render: renderPDF},
	FormatODT:      {contentType: "application/vnd.oasis.opendocument.text", render: renderODT},
}

// Formats lists the supported format names.
func Formats() []string {
	out := make([]string, 0, len(renderers))
	for f := range renderers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// IsSupported reports whether format can be rendered.
func IsSupported(format string) bool {
	_, ok := renderers[format]
	return ok
}

// Export renders data in format. Nothing is produced on error.
func Export(data *models.ResumeData, format string) (*File, error) {
	r, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if data == nil {
		return nil, ErrNoData
	}

	content, err := r.render(data)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return &File{
		Content:     content,
		ContentType: r.contentType,
		Filename:    "resume." + format,
	}, nil
}

// contactParts returns email, phone and location, skipping empty values.
func contactParts(c models.ContactInfo) []string {
	var parts []string
	for _, v := range []string{c.Email, c.Phone, c.Location} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}
