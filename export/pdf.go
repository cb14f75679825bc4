package export

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pivot/backend/models"
)

// A4 layout in points
const (
	pageMargin = 50.0
	ruleStartX = 50.0
	ruleEndX   = 545.0
	bodyIndent = 10.0
	separator  = "  •  "
)

// pdfWriter tracks the document and the UTF-8 to cp1252 translator the
// core Helvetica font needs.
type pdfWriter struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

func renderPDF(data *models.ResumeData) ([]byte, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.SetCreationDate(documentTime)
	doc.SetCatalogSort(true)
	doc.SetTitle(data.Contact.FullName, true)
	doc.AddPage()

	w := &pdfWriter{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	w.header(data.Contact)

	if data.Summary != "" {
		w.section("SUMMARY")
		w.body(data.Summary)
		doc.Ln(10)
	}

	if len(data.Experience) > 0 {
		w.section("EXPERIENCE")
		for _, job := range data.Experience {
			w.entryTitle(job.Position)
			w.body(job.Company + " | " + job.Location + " | " + job.StartDate + " - " + job.EndDate)
			doc.Ln(2)
			w.bullets(job.Highlights)
			doc.Ln(5)
		}
	}

	if len(data.Education) > 0 {
		w.section("EDUCATION")
		for _, edu := range data.Education {
			w.entryTitle(edu.Degree + " in " + edu.Field)
			line := edu.Institution + " | " + edu.GraduationDate
			if edu.GPA != "" {
				line += " | GPA: " + edu.GPA
			}
			w.body(line)
			w.bullets(edu.Highlights)
			doc.Ln(5)
		}
	}

	if len(data.Skills) > 0 {
		w.section("SKILLS")
		w.body(strings.Join(data.Skills, separator))
		doc.Ln(10)
	}

	if len(data.Certifications) > 0 {
		w.section("CERTIFICATIONS")
		for _, cert := range data.Certifications {
			w.body("• " + cert)
		}
		doc.Ln(10)
	}

	if len(data.Languages) > 0 {
		w.section("LANGUAGES")
		w.body(strings.Join(data.Languages, separator))
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *pdfWriter) header(c models.ContactInfo) {
	w.doc.SetFont("Helvetica", "B", 24)
	w.doc.MultiCell(0, 28, w.tr(c.FullName), "", "C", false)
	w.doc.Ln(4)

	w.doc.SetFont("Helvetica", "", 10)
	w.doc.MultiCell(0, 13, w.tr(strings.Join(contactParts(c), separator)), "", "C", false)

	var links []string
	for _, v := range []string{c.LinkedIn, c.Website} {
		if v != "" {
			links = append(links, v)
		}
	}
	if len(links) > 0 {
		w.doc.MultiCell(0, 13, w.tr(strings.Join(links, separator)), "", "C", false)
	}
	w.doc.Ln(12)
}

// section draws an uppercase title with a rule under it.
func (w *pdfWriter) section(title string) {
	w.doc.SetFont("Helvetica", "B", 12)
	w.doc.CellFormat(0, 16, title, "", 1, "L", false, 0, "")
	y := w.doc.GetY()
	w.doc.Line(ruleStartX, y, ruleEndX, y)
	w.doc.Ln(4)
}

func (w *pdfWriter) entryTitle(text string) {
	w.doc.SetFont("Helvetica", "B", 11)
	w.doc.MultiCell(0, 14, w.tr(text), "", "L", false)
}

func (w *pdfWriter) body(text string) {
	w.doc.SetFont("Helvetica", "", 10)
	w.doc.MultiCell(0, 13, w.tr(text), "", "L", false)
}

func (w *pdfWriter) bullets(items []string) {
	w.doc.SetFont("Helvetica", "", 10)
	for _, item := range items {
		w.doc.SetX(pageMargin + bodyIndent)
		w.doc.MultiCell(0, 13, w.tr("• "+item), "", "L", false)
	}
}
