package document

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/m-mizutani/goerr/v2"
)

// ExtractText parses data as a PDF and concatenates the text of every
// page in document order, trimming surrounding whitespace. Image-only
// pages contribute nothing; a PDF without pages yields an empty string.
// The reader is scoped to this call and holds no resources afterwards.
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to open PDF")
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", goerr.Wrap(err, "failed to extract page text", goerr.V("page", i))
		}
		sb.WriteString(text)
	}

	return strings.TrimSpace(sb.String()), nil
}
