package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/juris-lab/themis/pkg/domain/interfaces"
	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/domain/types"
)

type UseCases struct {
	repo         interfaces.Repository
	searchClient interfaces.SearchClient
	fetcher      interfaces.Fetcher
	llmClient    gollem.LLMClient
	maxDocuments int
	fetchLimit   int

	Search *SearchUseCase
	Chat   *ChatUseCase
}

type Option func(*UseCases)

func WithSearchClient(client interfaces.SearchClient) Option {
	return func(uc *UseCases) {
		uc.searchClient = client
	}
}

func WithFetcher(fetcher interfaces.Fetcher) Option {
	return func(uc *UseCases) {
		uc.fetcher = fetcher
	}
}

func WithLLMClient(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

// WithMaxDocuments sets the default cap on documents processed per search.
func WithMaxDocuments(n int) Option {
	return func(uc *UseCases) {
		if n > 0 {
			uc.maxDocuments = n
		}
	}
}

// WithFetchConcurrency caps how many documents are downloaded at once.
// The default of 1 keeps processing strictly sequential.
func WithFetchConcurrency(n int) Option {
	return func(uc *UseCases) {
		if n > 0 {
			uc.fetchLimit = n
		}
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:         repo,
		maxDocuments: defaultMaxDocuments,
		fetchLimit:   1,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Search = NewSearchUseCase(repo, uc.searchClient, uc.fetcher, uc.maxDocuments, uc.fetchLimit)
	if uc.llmClient != nil {
		uc.Chat = NewChatUseCase(repo, uc.llmClient)
	}

	return uc
}

// GetSession loads a session by ID.
func (u *UseCases) GetSession(ctx context.Context, id types.SessionID) (*model.Session, error) {
	sess, err := u.repo.Session().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrSessionNotFound, "failed to load session", goerr.V("session_id", id))
	}
	return sess, nil
}

// Reset deletes a session and every piece of state derived from it,
// including the live LLM conversation if one exists.
func (u *UseCases) Reset(ctx context.Context, id types.SessionID) error {
	if u.Chat != nil {
		u.Chat.Forget(id)
	}
	if err := u.repo.Session().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrSessionNotFound, "failed to delete session", goerr.V("session_id", id))
	}
	return nil
}
