package types

import "github.com/google/uuid"

// SessionID identifies one search session. A session is created per
// search term and owns the processed documents and chat history built
// from that term.
type SessionID string

// NewSessionID generates a new time-ordered session ID.
func NewSessionID() SessionID {
	return SessionID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of the session ID.
func (id SessionID) String() string {
	return string(id)
}
