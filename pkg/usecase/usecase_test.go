package usecase_test

import (
	"context"

	"github.com/m-mizutani/gollem"

	"github.com/juris-lab/themis/pkg/domain/model"
)

// stubSearchClient is a mock portal search client for testing
type stubSearchClient struct {
	searchFn func(ctx context.Context, query string) ([]*model.Expediente, error)
}

func (s *stubSearchClient) Search(ctx context.Context, query string) ([]*model.Expediente, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return []*model.Expediente{}, nil
}

// stubFetcher is a mock document fetcher for testing
type stubFetcher struct {
	fetchFn func(ctx context.Context, url string) (string, *model.Failure)
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (string, *model.Failure) {
	if s.fetchFn != nil {
		return s.fetchFn(ctx, url)
	}
	return "texto extraído", nil
}

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{
		Texts: []string{"Respuesta de prueba."},
	}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return s.GenerateStream(ctx, input...)
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}
