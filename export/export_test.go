package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivot/backend/extractor"
	"github.com/pivot/backend/models"
)

func fullResume() *models.ResumeData {
	return &models.ResumeData{
		Contact: models.ContactInfo{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+44 20 7946 0000",
			Location: "London",
			LinkedIn: "https://linkedin.com/in/ada",
			Website:  "https://ada.dev",
		},
		Summary: "Mathematician and first programmer.",
		Experience: []models.Experience{{
			ID:         "exp-1",
			Company:    "Analytical Engines Ltd",
			Position:   "Programmer",
			Location:   "London",
			StartDate:  "1842",
			EndDate:    "1843",
			Highlights: models.FlexibleStringSlice{"Wrote Note G", "Published translation"},
		}},
		Education: []models.Education{{
			ID:             "edu-1",
			Institution:    "Private tutoring",
			Degree:         "Studies",
			Field:          "Mathematics",
			Location:       "London",
			GraduationDate: "1835",
			GPA:            "4.0",
			Highlights:     models.FlexibleStringSlice{"Tutored by De Morgan"},
		}},
		Skills:         models.FlexibleStringSlice{"Mathematics", "Algorithms"},
		Certifications: models.FlexibleStringSlice{"Royal Society reader"},
		Languages:      models.FlexibleStringSlice{"English", "French"},
	}
}

func sparseResume() *models.ResumeData {
	return &models.ResumeData{
		Contact:        models.ContactInfo{FullName: "Sparse Person", Email: "sparse@example.com"},
		Summary:        "Short summary.",
		Experience:     []models.Experience{},
		Education:      []models.Education{},
		Skills:         models.FlexibleStringSlice{"Go"},
		Certifications: models.FlexibleStringSlice{},
		Languages:      models.FlexibleStringSlice{},
	}
}

func odtContent(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "content.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatal("content.xml not found")
	return ""
}

func TestExportMetadata(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
	}{
		{FormatJSON, "application/json"},
		{FormatMarkdown, "text/markdown"},
		{FormatPDF, "application/pdf"},
		{FormatODT, "application/vnd.oasis.opendocument.text"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			file, err := Export(fullResume(), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.contentType, file.ContentType)
			assert.Equal(t, "resume."+tt.format, file.Filename)
			assert.NotEmpty(t, file.Content)
		})
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	for _, format := range []string{"docx", "", "PDF", "html"} {
		file, err := Export(fullResume(), format)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, format)
		assert.Nil(t, file)
	}
	assert.Equal(t, []string{"json", "md", "odt", "pdf"}, Formats())
	assert.False(t, IsSupported("txt"))
}

func TestExportNilData(t *testing.T) {
	_, err := Export(nil, FormatJSON)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestExportEmptySectionsAllFormats(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			file, err := Export(sparseResume(), format)
			require.NoError(t, err)
			assert.NotEmpty(t, file.Content)
		})
	}

	// also tolerate nil lists
	for _, format := range Formats() {
		_, err := Export(&models.ResumeData{Contact: models.ContactInfo{FullName: "Nil Lists"}}, format)
		require.NoError(t, err, format)
	}
}

func TestMarkdownOmitsEmptySections(t *testing.T) {
	file, err := Export(sparseResume(), FormatMarkdown)
	require.NoError(t, err)
	md := string(file.Content)

	assert.Contains(t, md, "## Summary")
	assert.Contains(t, md, "## Skills")
	for _, heading := range []string{"## Experience", "## Education", "## Certifications", "## Languages"} {
		assert.NotContains(t, md, heading)
	}
}

func TestODTOmitsEmptySections(t *testing.T) {
	file, err := Export(sparseResume(), FormatODT)
	require.NoError(t, err)
	content := odtContent(t, file.Content)

	assert.Contains(t, content, ">Summary</text:p>")
	assert.Contains(t, content, ">Skills</text:p>")
	for _, heading := range []string{">Experience<", ">Education<", ">Certifications<", ">Languages<"} {
		assert.NotContains(t, content, heading)
	}
}

func TestMarkdownTemplate(t *testing.T) {
	file, err := Export(fullResume(), FormatMarkdown)
	require.NoError(t, err)

	want := "# Ada Lovelace\n\n" +
		"ada@example.com | +44 20 7946 0000 | London | [LinkedIn](https://linkedin.com/in/ada) | [Website](https://ada.dev)\n\n" +
		"## Summary\n\nMathematician and first programmer.\n\n" +
		"## Experience\n\n" +
		"### Programmer at Analytical Engines Ltd\n" +
		"*1842 - 1843* | London\n\n" +
		"- Wrote Note G\n- Published translation\n\n" +
		"## Education\n\n" +
		"### Studies in Mathematics\n" +
		"**Private tutoring** | 1835 | GPA: 4.0\n" +
		"- Tutored by De Morgan\n\n" +
		"## Skills\n\nMathematics, Algorithms\n\n" +
		"## Certifications\n\n- Royal Society reader\n\n" +
		"## Languages\n\nEnglish, French\n"

	assert.Equal(t, want, string(file.Content))
}

func TestMarkdownLiteralPassthrough(t *testing.T) {
	data := sparseResume()
	data.Summary = `Uses *stars*, _underscores_, <tags> & "quotes" 'too' # not a heading`

	file, err := Export(data, FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, string(file.Content), data.Summary)
}

func TestODTEscapesReservedCharacters(t *testing.T) {
	const nasty = `Tom & "Jerry" <'Ltd'>`
	const escaped = `Tom &amp; &quot;Jerry&quot; &lt;&apos;Ltd&apos;&gt;`

	data := &models.ResumeData{
		Contact: models.ContactInfo{
			FullName: nasty, Email: nasty, Phone: nasty, Location: nasty, LinkedIn: nasty, Website: nasty,
		},
		Summary: nasty,
		Experience: []models.Experience{{
			Company: nasty, Position: nasty, Location: nasty, StartDate: nasty, EndDate: nasty,
			Highlights: models.FlexibleStringSlice{nasty},
		}},
		Education: []models.Education{{
			Institution: nasty, Degree: nasty, Field: nasty, GraduationDate: nasty, GPA: nasty,
			Highlights: models.FlexibleStringSlice{nasty},
		}},
		Skills:         models.FlexibleStringSlice{nasty},
		Certifications: models.FlexibleStringSlice{nasty},
		Languages:      models.FlexibleStringSlice{nasty},
	}

	file, err := Export(data, FormatODT)
	require.NoError(t, err)
	content := odtContent(t, file.Content)

	assert.NotContains(t, content, nasty)
	assert.NotContains(t, content, "<'")
	assert.GreaterOrEqual(t, strings.Count(content, escaped), 20)

	// the document must stay well-formed
	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
}

func TestODTContainerLayout(t *testing.T) {
	file, err := Export(fullResume(), FormatODT)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(file.Content), int64(len(file.Content)))
	require.NoError(t, err)
	require.NotEmpty(t, zr.File)

	first := zr.File[0]
	assert.Equal(t, "mimetype", first.Name)
	assert.Equal(t, zip.Store, first.Method)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"mimetype", "META-INF/manifest.xml", "content.xml", "styles.xml"}, names)
}

func TestODTReadableByExtractor(t *testing.T) {
	file, err := Export(fullResume(), FormatODT)
	require.NoError(t, err)

	text, err := extractor.NewODT().Extract(context.Background(), &extractor.Source{Data: file.Content})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "Ada Lovelace\n"))
	assert.Contains(t, text, "ada@example.com • +44 20 7946 0000 • London")
	assert.Contains(t, text, "• Wrote Note G")
	assert.Contains(t, text, "Mathematics, Algorithms")
}

func TestJSONRoundTrip(t *testing.T) {
	for name, original := range map[string]*models.ResumeData{
		"full":   fullResume(),
		"sparse": sparseResume(),
		"nil":    {Contact: models.ContactInfo{FullName: "Nil Lists"}},
	} {
		t.Run(name, func(t *testing.T) {
			file, err := Export(original, FormatJSON)
			require.NoError(t, err)

			var decoded models.ResumeData
			require.NoError(t, json.Unmarshal(file.Content, &decoded))
			assert.Equal(t, *original, decoded)
		})
	}
}

func TestJSONIsIndented(t *testing.T) {
	file, err := Export(sparseResume(), FormatJSON)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(file.Content), "{\n  \"contact\": {\n    \"fullName\""))
}

func TestJSONKeepsHTMLCharacters(t *testing.T) {
	data := sparseResume()
	data.Summary = "R&D <lead>"

	file, err := Export(data, FormatJSON)
	require.NoError(t, err)

	assert.Contains(t, string(file.Content), `"summary": "R&D <lead>"`)
	assert.False(t, bytes.HasSuffix(file.Content, []byte("\n")))
}

func TestODTDropsForbiddenControlCharacters(t *testing.T) {
	data := sparseResume()
	data.Summary = "Page one\fPage two\x00\x1b end"

	file, err := Export(data, FormatODT)
	require.NoError(t, err)

	text, err := extractor.NewODT().Extract(context.Background(), &extractor.Source{Data: file.Content})
	require.NoError(t, err)
	assert.Contains(t, text, "Page one Page two")
	assert.NotContains(t, text, "\f")
}

func TestPDFReadableByExtractor(t *testing.T) {
	file, err := Export(fullResume(), FormatPDF)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(file.Content, []byte("%PDF-")))

	text, err := extractor.NewPDF().Extract(context.Background(), &extractor.Source{Data: file.Content})
	require.NoError(t, err)
	assert.Contains(t, text, "Lovelace")
	assert.Contains(t, text, "EXPERIENCE")
}

func TestPDFDeterministic(t *testing.T) {
	first, err := Export(fullResume(), FormatPDF)
	require.NoError(t, err)
	second, err := Export(fullResume(), FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
}
