package document_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/juris-lab/themis/pkg/service/document"
)

// buildPDF assembles a minimal but structurally valid PDF with one
// Helvetica text line per page, computing the xref table offsets.
func buildPDF(pageTexts ...string) []byte {
	n := len(pageTexts)

	// Object numbers: 1 catalog, 2 page tree, 3..2+n pages,
	// 3+n..2+2n content streams, 3+2n font.
	fontObj := 3 + 2*n

	objects := make([]string, 0, 2+2*n+1)
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+i))
	}
	objects = append(objects, fmt.Sprintf(
		"<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))

	for i := 0; i < n; i++ {
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>",
			3+n+i, fontObj))
	}

	for _, text := range pageTexts {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects, fmt.Sprintf(
			"<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	var sb strings.Builder
	sb.WriteString("%PDF-1.4\n")

	offsets := make([]int, 0, len(objects))
	for i, obj := range objects {
		offsets = append(offsets, sb.Len())
		fmt.Fprintf(&sb, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := sb.Len()
	fmt.Fprintf(&sb, "xref\n0 %d\n", len(objects)+1)
	sb.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&sb, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&sb, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)

	return []byte(sb.String())
}

func TestExtractText(t *testing.T) {
	data := buildPDF("Hola")

	text, err := document.ExtractText(data)
	gt.NoError(t, err)
	gt.S(t, strings.Join(strings.Fields(text), "")).Equal("Hola")
}

func TestExtractText_MultiPage(t *testing.T) {
	data := buildPDF("Hola", "Mundo")

	text, err := document.ExtractText(data)
	gt.NoError(t, err)
	gt.S(t, strings.Join(strings.Fields(text), "")).Equal("HolaMundo")
}

func TestExtractText_NoPages(t *testing.T) {
	data := buildPDF()

	text, err := document.ExtractText(data)
	gt.NoError(t, err)
	gt.S(t, text).Equal("")
}

func TestExtractText_Corrupt(t *testing.T) {
	_, err := document.ExtractText([]byte("%PDF-1.4\ngarbage"))
	gt.Error(t, err)
}
