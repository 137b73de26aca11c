package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/domain/types"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[types.SessionID]*model.Session
}

func newSessionRepository() *sessionRepository {
	return &sessionRepository{
		sessions: make(map[types.SessionID]*model.Session),
	}
}

// copySession creates a deep copy of a session so callers can never
// mutate stored state through a shared pointer.
func copySession(s *model.Session) *model.Session {
	copied := &model.Session{
		ID:            s.ID,
		Query:         s.Query,
		Corpus:        s.Corpus,
		DocumentCount: s.DocumentCount,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}

	if s.Expedientes != nil {
		copied.Expedientes = make([]*model.Expediente, len(s.Expedientes))
		for i, e := range s.Expedientes {
			record := *e
			copied.Expedientes[i] = &record
		}
	}

	if s.Documents != nil {
		copied.Documents = make([]*model.Document, len(s.Documents))
		for i, d := range s.Documents {
			doc := *d
			if d.Failure != nil {
				failure := *d.Failure
				doc.Failure = &failure
			}
			copied.Documents[i] = &doc
		}
	}

	if s.StatusEntries != nil {
		copied.StatusEntries = make([]model.StatusEntry, len(s.StatusEntries))
		copy(copied.StatusEntries, s.StatusEntries)
	}

	if s.History != nil {
		copied.History = make([]model.ChatTurn, len(s.History))
		copy(copied.History, s.History)
	}

	return copied
}

func (r *sessionRepository) Put(ctx context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copySession(s)
	stored.UpdatedAt = time.Now().UTC()

	r.sessions[stored.ID] = stored
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id types.SessionID) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.sessions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "session not found", goerr.V("id", id))
	}

	return copySession(s), nil
}

func (r *sessionRepository) Delete(ctx context.Context, id types.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return goerr.Wrap(ErrNotFound, "session not found", goerr.V("id", id))
	}

	delete(r.sessions, id)
	return nil
}
