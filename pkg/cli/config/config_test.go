package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/juris-lab/themis/pkg/cli/config"
)

func runWithFlags(t *testing.T, cfg interface{ Flags() []cli.Flag }, args ...string) {
	t.Helper()

	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestAppConfig_Defaults(t *testing.T) {
	var cfg config.AppConfig
	runWithFlags(t, &cfg)

	gt.NoError(t, cfg.Configure())

	gt.S(t, cfg.Portal.Endpoint).Equal("https://consultasentenciascj.poderjudicial.gob.do/Home/GetExpedientes")
	gt.N(t, cfg.Portal.TribunalID).Equal(1)
	gt.N(t, cfg.Portal.PageSize).Equal(10)
	gt.N(t, cfg.Assistant.MaxDocuments).Equal(5)
	gt.N(t, cfg.Assistant.FetchConcurrency).Equal(1)
}

func TestAppConfig_LoadTOML(t *testing.T) {
	content := `
[portal]
endpoint = "https://portal.example.com/Home/GetExpedientes"
tribunal_id = 2
page_size = 25

[assistant]
max_documents = 10
fetch_concurrency = 3
`
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))

	var cfg config.AppConfig
	runWithFlags(t, &cfg, "--config", path)

	gt.NoError(t, cfg.Configure())

	gt.S(t, cfg.Portal.Endpoint).Equal("https://portal.example.com/Home/GetExpedientes")
	gt.N(t, cfg.Portal.TribunalID).Equal(2)
	gt.N(t, cfg.Portal.PageSize).Equal(25)
	gt.N(t, cfg.Assistant.MaxDocuments).Equal(10)
	gt.N(t, cfg.Assistant.FetchConcurrency).Equal(3)
}

func TestAppConfig_PartialTOMLKeepsDefaults(t *testing.T) {
	content := `
[portal]
page_size = 50
`
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))

	var cfg config.AppConfig
	runWithFlags(t, &cfg, "--config", path)

	gt.NoError(t, cfg.Configure())

	gt.S(t, cfg.Portal.Endpoint).Equal("https://consultasentenciascj.poderjudicial.gob.do/Home/GetExpedientes")
	gt.N(t, cfg.Portal.PageSize).Equal(50)
	gt.N(t, cfg.Assistant.MaxDocuments).Equal(5)
}

func TestAppConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "relative endpoint",
			content: `
[portal]
endpoint = "/Home/GetExpedientes"
`,
		},
		{
			name: "page size too large",
			content: `
[portal]
page_size = 500
`,
		},
		{
			name: "negative tribunal",
			content: `
[portal]
tribunal_id = -1
`,
		},
		{
			name: "max documents over cap",
			content: `
[assistant]
max_documents = 100
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			gt.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			var cfg config.AppConfig
			runWithFlags(t, &cfg, "--config", path)

			gt.Error(t, cfg.Configure())
		})
	}
}

func TestAppConfig_MissingFile(t *testing.T) {
	var cfg config.AppConfig
	runWithFlags(t, &cfg, "--config", "/nonexistent/config.toml")

	gt.Error(t, cfg.Configure())
}

func TestAppConfig_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte("not toml ["), 0600))

	var cfg config.AppConfig
	runWithFlags(t, &cfg, "--config", path)

	gt.Error(t, cfg.Configure())
}
