package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/juris-lab/themis/pkg/cli/config"
	"github.com/juris-lab/themis/pkg/repository/memory"
	"github.com/juris-lab/themis/pkg/service/document"
	"github.com/juris-lab/themis/pkg/service/portal"
	"github.com/juris-lab/themis/pkg/usecase"
)

func cmdSearch() *cli.Command {
	var query string
	var limit int
	var asJSON bool
	var appCfg config.AppConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "Search term for the case portal",
			Required:    true,
			Destination: &query,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of rulings to download",
			Value:       5,
			Destination: &limit,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Emit the processing report as JSON",
			Destination: &asJSON,
		},
	}

	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:  "search",
		Usage: "Search rulings once and print the document report",
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

			uc := usecase.New(repo,
				usecase.WithSearchClient(searchClient),
				usecase.WithFetcher(document.NewFetcher()),
				usecase.WithMaxDocuments(appCfg.Assistant.MaxDocuments),
				usecase.WithFetchConcurrency(appCfg.Assistant.FetchConcurrency),
			)

			sess, err := uc.Search.Start(ctx, query, limit, nil)
			if err != nil {
				return err
			}

			if asJSON {
				type entry struct {
					Index      int    `json:"n"`
					Expediente string `json:"expediente"`
					Fecha      string `json:"fecha"`
					Partes     string `json:"partes"`
					Caracteres string `json:"caracteres"`
					Estado     string `json:"estado"`
					Preview    string `json:"vista_previa"`
				}
				report := struct {
					Query         string  `json:"query"`
					TotalRecords  int     `json:"total_records"`
					DocumentCount int     `json:"document_count"`
					Documents     []entry `json:"documents"`
				}{
					Query:         sess.Query,
					TotalRecords:  len(sess.Expedientes),
					DocumentCount: sess.DocumentCount,
					Documents:     make([]entry, 0, len(sess.StatusEntries)),
				}
				for _, e := range sess.StatusEntries {
					report.Documents = append(report.Documents, entry{
						Index:      e.Index,
						Expediente: e.CaseNumber,
						Fecha:      e.Date,
						Partes:     e.Parties,
						Caracteres: e.Characters,
						Estado:     e.Status.String(),
						Preview:    e.Preview,
					})
				}

				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			if len(sess.Expedientes) == 0 {
				fmt.Println("No se encontraron resultados para esta búsqueda.")
				return nil
			}
			printStatusTable(sess)

			return nil
		},
	}
}
