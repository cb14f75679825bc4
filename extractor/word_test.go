package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivot/backend/extractor/extractortest"
)

func TestWordSupportedMIMETypes(t *testing.T) {
	mimeTypes := NewWord().SupportedMIMETypes()

	assert.Contains(t, mimeTypes, MIMEDOCX)
	assert.Contains(t, mimeTypes, MIMEDOC)
	assert.Len(t, mimeTypes, 2)
}

func TestWordExtractDOCX(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			name: "paragraphs and runs",
			xml: `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Jane</w:t></w:r><w:r><w:t xml:space="preserve"> Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>Kubernetes</w:t></w:r></w:p>
</w:body></w:document>`,
			want: "Jane Doe\nGo Kubernetes",
		},
		{
			name: "table cells",
			xml: `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Skills</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Go, SQL</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
</w:body></w:document>`,
			want: "Skills\nGo, SQL",
		},
		{
			name: "line breaks",
			xml: `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>
</w:body></w:document>`,
			want: "Line one\nLine two",
		},
		{
			name: "deleted text is dropped",
			xml: `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Kept</w:t></w:r><w:del><w:r><w:delText>Gone</w:delText></w:r></w:del></w:p>
</w:body></w:document>`,
			want: "Kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := NewWord().Extract(context.Background(), &Source{Data: extractortest.DOCXFromXML(tt.xml)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestWordExtractMissingDocumentXML(t *testing.T) {
	data := extractortest.ODTFromFiles(map[string]string{"other.xml": "<x/>"})

	_, err := NewWord().Extract(context.Background(), &Source{Data: data})
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestWordExtractMalformedXML(t *testing.T) {
	data := extractortest.DOCXFromXML(`<w:document><w:body><w:p>`)

	_, err := NewWord().Extract(context.Background(), &Source{Data: data})
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestWordExtractLegacyDoc(t *testing.T) {
	data := []byte{0xD0, 0xCF, 0x11, 0xE0, 0x00, 0x01}
	data = append(data, []byte("Jane Doe Senior Engineer")...)
	data = append(data, 0x00, 'a', 'b', 0x00)
	data = append(data, []byte("Berlin\tGermany")...)

	text, err := NewWord().Extract(context.Background(), &Source{Data: data})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Senior Engineer\nBerlin Germany", text)
}

func TestWordExtractLegacyDocWithoutText(t *testing.T) {
	_, err := NewWord().Extract(context.Background(), &Source{Data: []byte{0xD0, 0xCF, 0x11, 0xE0, 0x00}})
	assert.ErrorIs(t, err, ErrCorruptDocument)
}
