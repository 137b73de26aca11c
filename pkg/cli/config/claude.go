package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/urfave/cli/v3"
)

const defaultClaudeModel = "claude-3-haiku-20240307"

// Claude holds configuration for the Claude LLM client
type Claude struct {
	apiKey string
	model  string
}

// Flags returns CLI flags for Claude configuration
func (c *Claude) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "claude-api-key",
			Usage:       "Anthropic API key (chat features are disabled when empty)",
			Sources:     cli.EnvVars("THEMIS_CLAUDE_API_KEY", "ANTHROPIC_API_KEY"),
			Destination: &c.apiKey,
		},
		&cli.StringFlag{
			Name:        "claude-model",
			Usage:       "Claude model used for chat completions",
			Value:       defaultClaudeModel,
			Sources:     cli.EnvVars("THEMIS_CLAUDE_MODEL"),
			Destination: &c.model,
		},
	}
}

// LogAttrs returns log attributes for the Claude configuration.
// The API key is never logged.
func (c *Claude) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("model", c.model),
		slog.Bool("api_key_set", c.apiKey != ""),
	}
}

// Configure creates a new Claude LLM client from the configured flags.
// Returns nil if no API key is configured (chat features will be disabled).
func (c *Claude) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	client, err := claude.New(ctx, c.apiKey, claude.WithModel(c.model))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Claude client")
	}

	return client, nil
}
