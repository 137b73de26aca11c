package document

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	"github.com/juris-lab/themis/pkg/domain/interfaces"
	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/domain/types"
	"github.com/juris-lab/themis/pkg/utils/safe"
)

const (
	defaultTimeout = 30 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// pdfSignature is the magic prefix every PDF payload must carry.
var pdfSignature = []byte("%PDF")

// Fetcher downloads ruling PDFs and extracts their text.
//
// TLS certificate verification is disabled: the portal's blob hosts
// are known to present invalid certificate chains, and the documents
// are public records. Do not reuse this client for anything else.
type Fetcher struct {
	httpClient *http.Client
}

var _ interfaces.Fetcher = &Fetcher{}

// Option is a functional option for Fetcher configuration
type Option func(*Fetcher)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = httpClient
	}
}

// NewFetcher creates a document fetcher with the relaxed TLS transport.
func NewFetcher(opts ...Option) *Fetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: true, // #nosec G402 -- the blob hosts serve broken certificate chains
	}

	f := &Fetcher{
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves the PDF at url and returns its extracted text.
// All failures come back as a typed Failure value; Fetch never aborts
// the batch it is called from.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, *model.Failure) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", model.NewFailure(types.FailureNetwork, err.Error())
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", model.NewFailure(types.FailureNetwork, err.Error())
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", model.NewFailure(types.FailureNetwork, "unexpected status "+resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", model.NewFailure(types.FailureNetwork, err.Error())
	}

	// The declared content type is unreliable; only the magic bytes count.
	if len(data) < len(pdfSignature) || !bytes.HasPrefix(data, pdfSignature) {
		return "", model.NewFailure(types.FailureInvalidContent, "El contenido no es un PDF válido")
	}

	text, err := ExtractText(data)
	if err != nil {
		return "", model.NewFailure(types.FailureParse, err.Error())
	}

	return text, nil
}
