package memory

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/juris-lab/themis/pkg/domain/interfaces"
)

// ErrNotFound is returned when the requested entity does not exist
var ErrNotFound = goerr.New("not found")

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository. Session state is intentionally
// not persisted anywhere else; a process restart drops all sessions.
type Memory struct {
	session *sessionRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		session: newSessionRepository(),
	}
}

func (m *Memory) Session() interfaces.SessionRepository {
	return m.session
}

// Close releases nothing for the in-memory backend but satisfies the
// Repository interface.
func (m *Memory) Close() error {
	return nil
}
