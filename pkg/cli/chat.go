package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/juris-lab/themis/pkg/cli/config"
	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/domain/types"
	"github.com/juris-lab/themis/pkg/repository/memory"
	"github.com/juris-lab/themis/pkg/service/document"
	"github.com/juris-lab/themis/pkg/service/portal"
	"github.com/juris-lab/themis/pkg/usecase"
)

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	titleColor  = color.New(color.FgWhite, color.Bold)
	okColor     = color.New(color.FgGreen)
	errColor    = color.New(color.FgRed)
	answerColor = color.New(color.FgYellow)
	subtleColor = color.New(color.Faint)
)

func cmdChat() *cli.Command {
	var limit int
	var appCfg config.AppConfig
	var claudeCfg config.Claude

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of rulings to download per search",
			Value:       5,
			Sources:     cli.EnvVars("THEMIS_LIMIT"),
			Destination: &limit,
		},
	}

	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, claudeCfg.Flags()...)

	return &cli.Command{
		Name:  "chat",
		Usage: "Search rulings interactively and chat about their contents",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := appCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to load configuration")
			}

			repo := memory.New()
			defer func() {
				_ = repo.Close()
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
			if llmClient == nil {
				return goerr.New("an Anthropic API key is required for chat (set --claude-api-key or ANTHROPIC_API_KEY)")
			}

			uc := usecase.New(repo,
				usecase.WithSearchClient(searchClient),
				usecase.WithFetcher(document.NewFetcher()),
				usecase.WithLLMClient(llmClient),
				usecase.WithMaxDocuments(appCfg.Assistant.MaxDocuments),
				usecase.WithFetchConcurrency(appCfg.Assistant.FetchConcurrency),
			)

			return runChatLoop(ctx, uc, limit)
		},
	}
}

// runChatLoop drives the interactive session. Lines starting with "/"
// are commands, the first plain line is the search term and later
// lines are chat messages. Searching the same term again reuses the
// existing session with its chat history.
func runChatLoop(ctx context.Context, uc *usecase.UseCases, limit int) error {
	titleColor.Println("Consulta de Sentencias")
	subtleColor.Println("Escribe un término de búsqueda. Comandos: /buscar <término>, /reset, /salir")
	fmt.Println()

	sessions := map[string]types.SessionID{}
	var current *model.Session

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if current == nil {
			promptColor.Print("buscar> ")
		} else {
			promptColor.Print("tú> ")
		}

		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/salir" || line == "/exit":
			return nil

		case line == "/reset":
			if current == nil {
				subtleColor.Println("No hay sesión activa.")
				continue
			}
			if err := uc.Reset(ctx, current.ID); err != nil {
				errColor.Println(err.Error())
				continue
			}
			delete(sessions, current.Query)
			current = nil
			subtleColor.Println("Sesión eliminada.")

		case strings.HasPrefix(line, "/buscar "):
			term := strings.TrimSpace(strings.TrimPrefix(line, "/buscar "))
			sess, err := startSearch(ctx, uc, sessions, term, limit)
			if err != nil {
				errColor.Println(err.Error())
				continue
			}
			current = sess

		case strings.HasPrefix(line, "/"):
			subtleColor.Println("Comando desconocido:", line)

		case current == nil:
			sess, err := startSearch(ctx, uc, sessions, line, limit)
			if err != nil {
				errColor.Println(err.Error())
				continue
			}
			current = sess

		default:
			answer, err := uc.Chat.Ask(ctx, current.ID, line)
			if err != nil {
				if errors.Is(err, usecase.ErrNoContext) {
					errColor.Println("Ningún documento se descargó correctamente; no hay contexto para el chat.")
					continue
				}
				errColor.Println(err.Error())
				continue
			}
			answerColor.Println(answer)
			fmt.Println()
		}
	}
}

func startSearch(ctx context.Context, uc *usecase.UseCases, sessions map[string]types.SessionID, term string, limit int) (*model.Session, error) {
	if id, ok := sessions[term]; ok {
		sess, err := uc.GetSession(ctx, id)
		if err == nil {
			subtleColor.Println("Reutilizando sesión existente para:", term)
			printStatusTable(sess)
			return sess, nil
		}
		delete(sessions, term)
	}

	progress := func(done, total int) {
		fmt.Printf("\rDescargando documentos... %d/%d", done, total)
	}

	sess, err := uc.Search.Start(ctx, term, limit, progress)
	if err != nil {
		fmt.Println()
		return nil, err
	}
	fmt.Println()

	if len(sess.Expedientes) == 0 {
		subtleColor.Println("No se encontraron resultados para esta búsqueda.")
	}
	printStatusTable(sess)
	sessions[term] = sess.ID

	return sess, nil
}

func printStatusTable(sess *model.Session) {
	if len(sess.StatusEntries) == 0 {
		return
	}

	titleColor.Printf("Resultados: %d expedientes, %d documentos procesados\n", len(sess.Expedientes), len(sess.StatusEntries))
	for _, e := range sess.StatusEntries {
		status := okColor
		if e.Status != types.DocumentStatusOK {
			status = errColor
		}

		fmt.Printf("%3d. %-28s %-12s ", e.Index, e.CaseNumber, e.Date)
		status.Printf("%-6s", e.Status.String())
		fmt.Printf(" %10s  %s\n", e.Characters, e.Parties)
		subtleColor.Printf("     %s\n", e.Preview)
	}
	okColor.Printf("Contexto cargado: %d documentos válidos\n", sess.DocumentCount)
	fmt.Println()
}
