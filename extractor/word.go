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

// minPrintableRun is the shortest run of printable characters salvaged
// from a legacy binary .doc file
const minPrintableRun = 4

// Word extracts paragraph text from DOCX and legacy DOC files.
type Word struct{}

// NewWord creates a Word extractor.
func NewWord() *Word {
	return &Word{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (w *Word) SupportedMIMETypes() []string {
	return []string{MIMEDOCX, MIMEDOC}
}

// Extract reads word/document.xml from a DOCX container. Files that are
// not zip archives are treated as legacy binary .doc and salvaged.
func (w *Word) Extract(_ context.Context, src *Source) (string, error) {
	if !isZip(src.Data) {
		return extractLegacyDoc(src.Data)
	}

	reader, err := zip.NewReader(bytes.NewReader(src.Data), int64(len(src.Data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	content, err := readZipEntry(reader, "word/document.xml")
	if err != nil {
		return "", err
	}

	text, err := parseDocumentXML(content)
	if err != nil {
		return "", fmt.Errorf("%w: word/document.xml: %v", ErrCorruptDocument, err)
	}
	return text, nil
}

// parseDocumentXML walks the WordprocessingML token stream. Paragraphs end
// with a newline, tabs and breaks become separators, styling is dropped.
// Paragraphs nested in tables are included in document order.
func parseDocumentXML(content []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var sb strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return collapseSeparators(sb.String()), nil
}

// extractLegacyDoc keeps runs of printable characters from a binary .doc.
func extractLegacyDoc(data []byte) (string, error) {
	var (
		out strings.Builder
		run strings.Builder
	)
	flush := func() {
		if run.Len() >= minPrintableRun {
			out.WriteString(run.String())
			out.WriteString("\n")
		}
		run.Reset()
	}

	for _, b := range data {
		switch {
		case b >= 32 && b <= 126:
			run.WriteByte(b)
		case b == '\t':
			run.WriteByte(' ')
		default:
			flush()
		}
	}
	flush()

	text := collapseSeparators(out.String())
	if text == "" {
		return "", fmt.Errorf("%w: no readable text in legacy document", ErrCorruptDocument)
	}
	return text, nil
}

func isZip(data []byte) bool {
	return len(data) >= 4 && data[0] == 'P' && data[1] == 'K' && data[2] == 3 && data[3] == 4
}

// readZipEntry returns the contents of name, or ErrCorruptDocument when the
// entry is missing or unreadable.
func readZipEntry(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", ErrCorruptDocument, name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrCorruptDocument, name, err)
		}
		return content, nil
	}
	return nil, fmt.Errorf("%w: %s not found", ErrCorruptDocument, name)
}
