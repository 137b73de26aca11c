package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/juris-lab/themis/pkg/domain/interfaces"
	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/utils/safe"
)

const (
	defaultTribunalID = 1
	defaultPageSize   = 10
	defaultTimeout    = 20 * time.Second

	// The portal validates nothing else about the client, but it only
	// answers requests that look like they came from its own frontend.
	userAgent = "Mozilla/5.0"

	// columnCount is the number of per-column metadata blocks the
	// DataTables endpoint expects in every request.
	columnCount = 4
)

// Client drives the paginated case search against the portal's
// DataTables endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	origin     string
	tribunalID int
	pageSize   int
}

var _ interfaces.SearchClient = &Client{}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTribunalID sets the chamber filter sent with every search.
func WithTribunalID(id int) Option {
	return func(c *Client) {
		c.tribunalID = id
	}
}

// WithPageSize sets the page size of the search pagination.
func WithPageSize(size int) Option {
	return func(c *Client) {
		c.pageSize = size
	}
}

// New creates a search client for the given endpoint URL.
func New(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid portal endpoint", goerr.V("endpoint", endpoint))
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, goerr.New("portal endpoint must be an absolute URL", goerr.V("endpoint", endpoint))
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		endpoint:   endpoint,
		origin:     u.Scheme + "://" + u.Host,
		tribunalID: defaultTribunalID,
		pageSize:   defaultPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Search collects all matching records across pages into one ordered
// sequence. The server-reported total is captured from the first page
// only; totals reported by later pages may reflect a shifted view and
// are ignored. A zero total short-circuits without a second request.
func (c *Client) Search(ctx context.Context, query string) ([]*model.Expediente, error) {
	var records []*model.Expediente
	total := -1

	for draw, start := 1, 0; ; draw, start = draw+1, start+c.pageSize {
		page, err := c.fetchPage(ctx, query, draw, start)
		if err != nil {
			return nil, err
		}

		if total < 0 {
			total = page.RecordsFiltered
			if total == 0 {
				return []*model.Expediente{}, nil
			}
		}

		for _, row := range page.Data {
			records = append(records, row.toModel())
		}

		if start+c.pageSize >= total {
			break
		}
	}

	return records, nil
}

func (c *Client) fetchPage(ctx context.Context, query string, draw, start int) (*searchResponse, error) {
	form := url.Values{}
	form.Set("draw", strconv.Itoa(draw))
	form.Set("start", strconv.Itoa(start))
	form.Set("length", strconv.Itoa(c.pageSize))
	form.Set("search[value]", query)
	form.Set("search[regex]", "false")
	form.Set("IdTribunal", strconv.Itoa(c.tribunalID))
	form.Set("Materia", "")
	form.Set("Ano", "")
	form.Set("Mes", "")
	form.Set("IdTipoDocumento", "")
	form.Set("Contenido", query)

	for i := 0; i < columnCount; i++ {
		prefix := fmt.Sprintf("columns[%d]", i)
		form.Set(prefix+"[data]", "")
		form.Set(prefix+"[name]", "")
		form.Set(prefix+"[searchable]", "true")
		form.Set(prefix+"[orderable]", "false")
		form.Set(prefix+"[search][value]", "")
		form.Set(prefix+"[search][regex]", "false")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build search request", goerr.V("draw", draw))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Origin", c.origin)
	req.Header.Set("Referer", c.origin+"/")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "search request failed",
			goerr.V("draw", draw),
			goerr.V("start", start),
		)
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, goerr.New("portal returned unexpected status",
			goerr.V("status", resp.StatusCode),
			goerr.V("draw", draw),
			goerr.V("start", start),
		)
	}

	var page searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, goerr.Wrap(err, "failed to decode search response",
			goerr.V("draw", draw),
			goerr.V("start", start),
		)
	}

	return &page, nil
}
