package interfaces

import (
	"context"

	"github.com/juris-lab/themis/pkg/domain/model"
)

// SearchClient drives the paginated case search against the portal.
// The returned records preserve server order across pages. Any
// transport or decoding failure aborts the whole search; no partial
// results are returned.
type SearchClient interface {
	Search(ctx context.Context, query string) ([]*model.Expediente, error)
}
