package export

import (
	"archive/zip"
	"bytes"
	"strings"

	"github.com/pivot/backend/models"
)

const odtMIMEType = "application/vnd.oasis.opendocument.text"

const odtManifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
  <manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.oasis.opendocument.text"/>
  <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
  <manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
</manifest:manifest>`

const odtStyles = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
  xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
  xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0" office:version="1.2">
  <office:styles>
    <style:style style:name="Heading1" style:family="paragraph">
      <style:text-properties fo:font-size="18pt" fo:font-weight="bold"/>
    </style:style>
    <style:style style:name="Heading2" style:family="paragraph">
      <style:text-properties fo:font-size="14pt" fo:font-weight="bold"/>
    </style:style>
    <style:style style:name="Bold" style:family="text">
      <style:text-properties fo:font-weight="bold"/>
    </style:style>
  </office:styles>
</office:document-styles>`

const odtContentHead = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
  xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" office:version="1.2">
  <office:body>
    <office:text>
`

const odtContentTail = `
    </office:text>
  </office:body>
</office:document-content>`

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes the five XML reserved characters. Control characters
// XML 1.0 forbids, such as the form feeds in text extracted from PDFs,
// become spaces.
func escapeXML(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF:
			return ' '
		}
		return r
	}, s)
	return xmlEscaper.Replace(s)
}

// odtBody accumulates text:p elements. Every string passed in is user
// text and gets escaped.
type odtBody struct {
	sb strings.Builder
}

func (b *odtBody) para(style, text string) {
	b.sb.WriteString("      <text:p")
	if style != "" {
		b.sb.WriteString(` text:style-name="` + style + `"`)
	}
	b.sb.WriteString(">")
	b.sb.WriteString(escapeXML(text))
	b.sb.WriteString("</text:p>\n")
}

func (b *odtBody) bold(text string) {
	b.sb.WriteString(`      <text:p><text:span text:style-name="Bold">`)
	b.sb.WriteString(escapeXML(text))
	b.sb.WriteString("</text:span></text:p>\n")
}

func (b *odtBody) heading(title string) {
	b.para("Heading2", title)
}

func (b *odtBody) bullets(items []string) {
	for _, item := range items {
		b.para("", "• "+item)
	}
}

func renderODT(data *models.ResumeData) ([]byte, error) {
	var body odtBody
	c := data.Contact

	body.para("Heading1", c.FullName)
	body.para("", strings.Join(contactParts(c), " • "))
	if c.LinkedIn != "" {
		body.para("", c.LinkedIn)
	}
	if c.Website != "" {
		body.para("", c.Website)
	}

	if data.Summary != "" {
		body.heading("Summary")
		body.para("", data.Summary)
	}

	if len(data.Experience) > 0 {
		body.heading("Experience")
		for _, job := range data.Experience {
			body.bold(job.Position)
			body.para("", job.Company+" | "+job.Location+" | "+job.StartDate+" - "+job.EndDate)
			body.bullets(job.Highlights)
		}
	}

	if len(data.Education) > 0 {
		body.heading("Education")
		for _, edu := range data.Education {
			body.bold(edu.Degree + " in " + edu.Field)
			line := edu.Institution + " | " + edu.GraduationDate
			if edu.GPA != "" {
				line += " | GPA: " + edu.GPA
			}
			body.para("", line)
			body.bullets(edu.Highlights)
		}
	}

	if len(data.Skills) > 0 {
		body.heading("Skills")
		body.para("", strings.Join(data.Skills, ", "))
	}

	if len(data.Certifications) > 0 {
		body.heading("Certifications")
		body.bullets(data.Certifications)
	}

	if len(data.Languages) > 0 {
		body.heading("Languages")
		body.para("", strings.Join(data.Languages, ", "))
	}

	content := odtContentHead + body.sb.String() + odtContentTail
	return packODT(content)
}

// packODT writes the container. The mimetype entry must come first and
// be stored uncompressed.
func packODT(content string) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	entries := []struct {
		name   string
		method uint16
		data   string
	}{
		{"mimetype", zip.Store, odtMIMEType},
		{"META-INF/manifest.xml", zip.Deflate, odtManifest},
		{"content.xml", zip.Deflate, content},
		{"styles.xml", zip.Deflate, odtStyles},
	}

	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   e.method,
			Modified: documentTime,
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(e.data)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
