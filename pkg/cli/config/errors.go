package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidEndpoint   = goerr.New("portal endpoint must be an absolute URL")
	ErrInvalidTribunalID = goerr.New("tribunal ID must be positive")
	ErrInvalidPageSize   = goerr.New("page size must be between 1 and 100")
	ErrInvalidMaxDocs    = goerr.New("max documents must be between 1 and 20")
	ErrInvalidFetchLimit = goerr.New("fetch concurrency must be positive")
)
