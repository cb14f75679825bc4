package export

import (
	"bytes"
	"encoding/json"

	"github.com/pivot/backend/models"
)

// renderJSON pretty-prints data with two-space indentation and no HTML
// escaping, so "&", "<" and ">" stay verbatim in the download.
func renderJSON(data *models.ResumeData) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
