package config

import (
	"net/url"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

const (
	defaultEndpoint   = "https://consultasentenciascj.poderjudicial.gob.do/Home/GetExpedientes"
	defaultTribunalID = 1
	defaultPageSize   = 10

	defaultMaxDocuments     = 5
	defaultFetchConcurrency = 1
)

// AppConfig represents the application configuration
type AppConfig struct {
	configPath string

	Portal    Portal    `toml:"portal"`
	Assistant Assistant `toml:"assistant"`
}

// Portal configures the case search endpoint
type Portal struct {
	Endpoint   string `toml:"endpoint"`
	TribunalID int    `toml:"tribunal_id"`
	PageSize   int    `toml:"page_size"`
}

// Validate checks if the Portal configuration is valid
func (p *Portal) Validate() error {
	u, err := url.Parse(p.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return goerr.Wrap(ErrInvalidEndpoint, "invalid portal section", goerr.V("endpoint", p.Endpoint))
	}
	if p.TribunalID <= 0 {
		return goerr.Wrap(ErrInvalidTribunalID, "invalid portal section", goerr.V("tribunal_id", p.TribunalID))
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		return goerr.Wrap(ErrInvalidPageSize, "invalid portal section", goerr.V("page_size", p.PageSize))
	}
	return nil
}

// Assistant configures document processing limits
type Assistant struct {
	MaxDocuments     int `toml:"max_documents"`
	FetchConcurrency int `toml:"fetch_concurrency"`
}

// Validate checks if the Assistant configuration is valid
func (a *Assistant) Validate() error {
	if a.MaxDocuments < 1 || a.MaxDocuments > 20 {
		return goerr.Wrap(ErrInvalidMaxDocs, "invalid assistant section", goerr.V("max_documents", a.MaxDocuments))
	}
	if a.FetchConcurrency < 1 {
		return goerr.Wrap(ErrInvalidFetchLimit, "invalid assistant section", goerr.V("fetch_concurrency", a.FetchConcurrency))
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if err := a.Portal.Validate(); err != nil {
		return err
	}
	if err := a.Assistant.Validate(); err != nil {
		return err
	}
	return nil
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML configuration file",
			Sources:     cli.EnvVars("THEMIS_CONFIG"),
			Destination: &a.configPath,
		},
	}
}

// Configure applies defaults, loads the optional TOML file and
// validates the result.
func (a *AppConfig) Configure() error {
	a.applyDefaults()

	if a.configPath != "" {
		// #nosec G304 - path is expected to be provided by CLI argument
		data, err := os.ReadFile(a.configPath)
		if err != nil {
			return goerr.Wrap(err, "failed to read config file", goerr.V("path", a.configPath))
		}

		var fileCfg AppConfig
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			return goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", a.configPath))
		}
		a.merge(&fileCfg)
	}

	if err := a.Validate(); err != nil {
		return goerr.Wrap(err, "config validation failed", goerr.V("path", a.configPath))
	}

	return nil
}

func (a *AppConfig) applyDefaults() {
	a.Portal = Portal{
		Endpoint:   defaultEndpoint,
		TribunalID: defaultTribunalID,
		PageSize:   defaultPageSize,
	}
	a.Assistant = Assistant{
		MaxDocuments:     defaultMaxDocuments,
		FetchConcurrency: defaultFetchConcurrency,
	}
}

func (a *AppConfig) merge(override *AppConfig) {
	if override.Portal.Endpoint != "" {
		a.Portal.Endpoint = override.Portal.Endpoint
	}
	if override.Portal.TribunalID != 0 {
		a.Portal.TribunalID = override.Portal.TribunalID
	}
	if override.Portal.PageSize != 0 {
		a.Portal.PageSize = override.Portal.PageSize
	}

	if override.Assistant.MaxDocuments != 0 {
		a.Assistant.MaxDocuments = override.Assistant.MaxDocuments
	}
	if override.Assistant.FetchConcurrency != 0 {
		a.Assistant.FetchConcurrency = override.Assistant.FetchConcurrency
	}
}
