package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/juris-lab/themis/pkg/cli/config"
	httpctrl "github.com/juris-lab/themis/pkg/controller/http"
	"github.com/juris-lab/themis/pkg/repository/memory"
	"github.com/juris-lab/themis/pkg/service/document"
	"github.com/juris-lab/themis/pkg/service/portal"
	"github.com/juris-lab/themis/pkg/usecase"
	"github.com/juris-lab/themis/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.AppConfig
	var claudeCfg config.Claude

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("THEMIS_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, claudeCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to load configuration")
			}

			repo := memory.New()
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			searchClient, err := portal.New(appCfg.Portal.Endpoint,
				portal.WithTribunalID(appCfg.Portal.TribunalID),
				portal.WithPageSize(appCfg.Portal.PageSize),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create portal client")
			}

			llmClient, err := claudeCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Claude client")
			}
			if llmClient != nil {
				logging.Default().Info("Chat features enabled", slog.Any("claude", claudeCfg.LogAttrs()))
			} else {
				logging.Default().Info("Claude API key not configured, chat features are disabled")
			}

			uc := usecase.New(repo,
				usecase.WithSearchClient(searchClient),
				usecase.WithFetcher(document.NewFetcher()),
				usecase.WithLLMClient(llmClient),
				usecase.WithMaxDocuments(appCfg.Assistant.MaxDocuments),
				usecase.WithFetchConcurrency(appCfg.Assistant.FetchConcurrency),
			)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
