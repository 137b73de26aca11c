package interfaces

import (
	"context"

	"github.com/juris-lab/themis/pkg/domain/model"
)

// Fetcher downloads one ruling PDF and extracts its text. Failures are
// returned as data rather than errors so a bad document never aborts
// the batch it belongs to.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, *model.Failure)
}
