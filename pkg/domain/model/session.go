package model

import (
	"time"

	"github.com/juris-lab/themis/pkg/domain/types"
)

// ChatTurn is one conversation turn.
type ChatTurn struct {
	Role    types.ChatRole
	Content string
}

// Session holds all state derived from one search term: the matched
// records, the processed documents with their status projections, the
// assembled context corpus, and the conversation history. A new search
// term always creates a new session, so chat history never spans two
// corpora.
type Session struct {
	ID            types.SessionID
	Query         string
	Expedientes   []*Expediente
	Documents     []*Document
	StatusEntries []StatusEntry
	Corpus        string
	DocumentCount int // documents that contributed to the corpus
	History       []ChatTurn
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSession creates an empty session for the given search term.
func NewSession(query string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        types.NewSessionID(),
		Query:     query,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AppendTurn records a conversation turn. Turns are append-only; a
// failed assistant reply does not remove the user turn that caused it.
func (s *Session) AppendTurn(role types.ChatRole, content string) {
	s.History = append(s.History, ChatTurn{Role: role, Content: content})
	s.UpdatedAt = time.Now().UTC()
}

// HasContext reports whether the session carries a usable corpus.
func (s *Session) HasContext() bool {
	return s.Corpus != ""
}
