package ibge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	applog "github.com/janisto/promarket/internal/platform/logging"
)

const (
	defaultBaseURL = "https://servicodados.ibge.gov.br/api/v1"
	userAgent      = "promarket"
)

// Client implements Service using the IBGE localities REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new IBGE API client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ibgeMunicipality matches the wire shape of the localities API.
type ibgeMunicipality struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return c.httpClient.Do(req)
}

func (c *Client) decodeResponse(ctx context.Context, resp *http.Response, target any) error {
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("decoding ibge response: %w", err)
		}
		return nil
	}

	if resp.StatusCode == http.StatusNotFound {
		return upstreamErrorFromResponse(resp, UpstreamErrorKindNotFound, ErrNotFound)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		applog.LogWarn(ctx, "ibge api rate limit exceeded",
			zap.Int("status", resp.StatusCode),
			zap.String("Retry-After", resp.Header.Get("Retry-After")),
		)
		return upstreamErrorFromResponse(resp, UpstreamErrorKindRateLimited, ErrRateLimited)
	}

	return upstreamErrorFromResponse(resp, UpstreamErrorKindUpstream, ErrUpstream)
}

func (c *Client) Municipalities(ctx context.Context, uf string) ([]Municipality, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))

	q := url.Values{"orderBy": {"nome"}}
	resp, err := c.doRequest(ctx, "/localidades/estados/"+url.PathEscape(uf)+"/municipios", q)
	if err != nil {
		return nil, fmt.Errorf("fetching municipalities: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var wire []ibgeMunicipality
	if err := c.decodeResponse(ctx, resp, &wire); err != nil {
		return nil, err
	}

	municipalities := make([]Municipality, len(wire))
	for i, m := range wire {
		municipalities[i] = Municipality{
			ID:      m.ID,
			Name:    m.Nome,
			StateUF: uf,
		}
	}
	return municipalities, nil
}

func upstreamErrorFromResponse(resp *http.Response, kind UpstreamErrorKind, cause error) *UpstreamError {
	return &UpstreamError{
		Kind:       kind,
		Status:     resp.StatusCode,
		RetryAfter: strings.TrimSpace(resp.Header.Get("Retry-After")),
		cause:      cause,
	}
}

// Compile-time interface check
var _ Service = (*Client)(nil)
