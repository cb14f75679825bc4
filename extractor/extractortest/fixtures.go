// Package extractortest builds in-memory document fixtures.
package extractortest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
)

// DOCX builds a minimal DOCX with one paragraph per argument.
func DOCX(paragraphs ...string) []byte {
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(escape(p))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	return DOCXFromXML(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`)
}

// DOCXFromXML wraps a raw word/document.xml in a DOCX container.
func DOCXFromXML(documentXML string) []byte {
	return zipFiles(map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`,
		"word/document.xml": documentXML,
	}, nil)
}

// ODT builds a minimal ODT with one paragraph per argument.
func ODT(paragraphs ...string) []byte {
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<text:p>")
		body.WriteString(escape(p))
		body.WriteString("</text:p>\n")
	}
	return ODTFromBody(body.String())
}

// ODTFromBody wraps office:text body markup in an ODT container.
func ODTFromBody(body string) []byte {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
  xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">
  <office:body>
    <office:text>
` + body + `
    </office:text>
  </office:body>
</office:document-content>`
	return ODTFromFiles(map[string]string{"content.xml": content})
}

// ODTFromFiles builds an ODT container with the given entries after the
// stored mimetype entry.
func ODTFromFiles(files map[string]string) []byte {
	return zipFiles(files, []byte("application/vnd.oasis.opendocument.text"))
}

func zipFiles(files map[string]string, mimetype []byte) []byte {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	if mimetype != nil {
		f, _ := w.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
		f.Write(mimetype)
	}
	for name, content := range files {
		f, _ := w.Create(name)
		f.Write([]byte(content))
	}

	w.Close()
	return buf.Bytes()
}

func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
