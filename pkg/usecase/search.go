package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/juris-lab/themis/pkg/domain/interfaces"
	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/utils/logging"
)

const (
	defaultMaxDocuments = 5

	// maxDocumentLimit bounds how many rulings one search may process.
	maxDocumentLimit = 20
)

// ProgressFunc is called after each processed document with the number
// of finished items and the batch size.
type ProgressFunc func(done, total int)

// SearchUseCase runs the search-and-process pipeline: query the portal,
// download the top-N rulings, extract their text and assemble the
// session corpus.
type SearchUseCase struct {
	repo         interfaces.Repository
	searchClient interfaces.SearchClient
	fetcher      interfaces.Fetcher
	maxDocuments int
	fetchLimit   int
}

// NewSearchUseCase creates a new SearchUseCase
func NewSearchUseCase(repo interfaces.Repository, searchClient interfaces.SearchClient, fetcher interfaces.Fetcher, maxDocuments, fetchLimit int) *SearchUseCase {
	if maxDocuments <= 0 {
		maxDocuments = defaultMaxDocuments
	}
	if fetchLimit <= 0 {
		fetchLimit = 1
	}
	return &SearchUseCase{
		repo:         repo,
		searchClient: searchClient,
		fetcher:      fetcher,
		maxDocuments: maxDocuments,
		fetchLimit:   fetchLimit,
	}
}

// Start runs a full search for the given term and returns the freshly
// built session. A search failure aborts the whole operation with no
// partial session; per-document failures are recorded in the session
// instead. limit <= 0 selects the configured default.
func (uc *SearchUseCase) Start(ctx context.Context, query string, limit int, progress ProgressFunc) (*model.Session, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, goerr.Wrap(ErrEmptyQuery, "cannot search")
	}

	if limit <= 0 {
		limit = uc.maxDocuments
	}
	if limit > maxDocumentLimit {
		limit = maxDocumentLimit
	}

	records, err := uc.searchClient.Search(ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "search failed", goerr.V("query", query))
	}

	session := model.NewSession(query)
	session.Expedientes = records

	logging.From(ctx).Info("search completed",
		"query", query,
		"records", len(records),
		"limit", limit,
	)

	if len(records) > 0 {
		session.Documents = uc.processRecords(ctx, records, limit, progress)

		session.StatusEntries = make([]model.StatusEntry, len(session.Documents))
		for i, d := range session.Documents {
			session.StatusEntries[i] = model.NewStatusEntry(i+1, d)
		}

		session.Corpus, session.DocumentCount = BuildCorpus(session.Documents)
	}

	if err := uc.repo.Session().Put(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to store session", goerr.V("session_id", session.ID))
	}

	return session, nil
}

// processRecords downloads and extracts the first min(limit, len)
// records. Downloads may overlap up to the configured concurrency cap,
// but the result slice is always ordered by input position.
func (uc *SearchUseCase) processRecords(ctx context.Context, records []*model.Expediente, limit int, progress ProgressFunc) []*model.Document {
	count := min(limit, len(records))
	docs := make([]*model.Document, count)

	var mu sync.Mutex
	done := 0

	eg := &errgroup.Group{}
	eg.SetLimit(uc.fetchLimit)

	for i := 0; i < count; i++ {
		eg.Go(func() error {
			docs[i] = uc.processRecord(ctx, records[i])

			mu.Lock()
			done++
			if progress != nil {
				progress(done, count)
			}
			mu.Unlock()
			return nil
		})
	}

	// Workers only report soft failures through the documents themselves.
	_ = eg.Wait()

	return docs
}

func (uc *SearchUseCase) processRecord(ctx context.Context, e *model.Expediente) *model.Document {
	if e.URLBlob == "" {
		return model.NewFailedDocument(e, model.MissingURLFailure())
	}

	text, failure := uc.fetcher.Fetch(ctx, e.URLBlob)
	if failure != nil {
		logging.From(ctx).Debug("document fetch failed",
			"case", e.CaseNumber(),
			"kind", failure.Kind,
			"message", failure.Message,
		)
		return model.NewFailedDocument(e, failure)
	}

	return model.NewDocument(e, text)
}
