package model

import (
	"strconv"
	"strings"

	"github.com/juris-lab/themis/pkg/domain/types"
)

// Display truncation limits. These apply to the StatusEntry projection
// only, never to the underlying Document.
const (
	previewLength      = 180
	errorPreviewLength = 120
	partiesLength      = 90
)

// NoCharacters is shown in place of a character count for failed documents.
const NoCharacters = "—"

// StatusEntry is a display-only projection of one processed document.
// Recomputed from the Document, never persisted on its own.
type StatusEntry struct {
	Index      int // 1-based position in the processed batch
	CaseNumber string
	Date       string
	Parties    string
	Characters string
	Status     types.DocumentStatus
	Preview    string
}

// NewStatusEntry computes the projection for a document at the given
// 1-based position.
func NewStatusEntry(index int, d *Document) StatusEntry {
	entry := StatusEntry{
		Index:      index,
		CaseNumber: d.CaseNumber,
		Date:       d.Date,
		Parties:    truncate(d.Parties, partiesLength),
	}

	if d.Succeeded() {
		entry.Status = types.DocumentStatusOK
		entry.Characters = formatCharCount(len([]rune(d.Text)))
		entry.Preview = truncate(d.Text, previewLength)
	} else {
		entry.Status = types.DocumentStatusError
		entry.Characters = NoCharacters
		entry.Preview = clip(d.Failure.Marker(), errorPreviewLength)
	}

	return entry
}

// truncate cuts s at max runes, appending an ellipsis when it was longer.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// clip cuts s at max runes without an ellipsis.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// formatCharCount renders a count with thousands separators ("12,345").
func formatCharCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
