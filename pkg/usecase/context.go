package usecase

import (
	"fmt"
	"strings"

	"github.com/juris-lab/themis/pkg/domain/model"
)

// corpusTextLimit caps how many characters of each ruling enter the
// chat context.
const corpusTextLimit = 10000

// BuildCorpus concatenates the successfully extracted documents into
// one prompt-ready string and returns it with the number of documents
// it contains. Failed documents are excluded; each survivor is capped
// at corpusTextLimit characters and tagged with its case metadata.
// The transform is pure: the same documents always yield byte-identical
// output.
func BuildCorpus(docs []*model.Document) (string, int) {
	var blocks []string
	count := 0

	for _, d := range docs {
		if !d.Succeeded() {
			continue
		}
		count++

		text := d.Text
		if runes := []rune(text); len(runes) > corpusTextLimit {
			text = string(runes[:corpusTextLimit])
		}

		blocks = append(blocks, fmt.Sprintf(
			"\n<documento expediente=\"%s\" fecha=\"%s\">\nPartes: %s\n%s\n</documento>\n",
			d.CaseNumber, d.Date, d.Parties, text,
		))
	}

	return strings.Join(blocks, "\n"), count
}
