package interfaces

import (
	"context"

	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/domain/types"
)

// SessionRepository defines the interface for Session data access
type SessionRepository interface {
	// Put stores or replaces a session keyed by its ID
	Put(ctx context.Context, s *model.Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id types.SessionID) (*model.Session, error)

	// Delete removes a session by ID
	Delete(ctx context.Context, id types.SessionID) error
}
