package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrEmptyQuery      = errors.New("search term is empty")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoContext       = errors.New("session has no processed documents")
)
