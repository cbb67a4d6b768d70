package astro

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/officerdemo/internal/common"
	"github.com/dmitrijs2005/officerdemo/internal/logging"
	"github.com/dmitrijs2005/officerdemo/internal/metrics"
	"github.com/dmitrijs2005/officerdemo/internal/models"
	"github.com/google/uuid"
)

const (
	DefaultBaseURL        = "http://api.open-notify.org"
	AstrosPath            = "/astros.json"
	DefaultRequestTimeout = 30 * time.Second
	DefaultAsyncTimeout   = 9 * time.Second
)

// maxErrorBody caps how much of a non-2xx body ends up in an error message.
const maxErrorBody = 512

// Config holds client configuration.
type Config struct {
	BaseURL string
	// Timeout bounds a whole blocking call. Zero means DefaultRequestTimeout.
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// New creates a client for cfg.BaseURL.
func New(cfg Config, logger logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "astro"),
	}
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetRaw performs the request and returns the body unparsed.
func (c *Client) GetRaw(ctx context.Context) (body string, err error) {
	defer metrics.ObserveAstroCall("raw", time.Now(), &err)

	b, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetAstroResponse performs the request and decodes the body. It blocks
// until the response arrives or the transport gives up.
func (c *Client) GetAstroResponse(ctx context.Context) (resp *models.AstroResponse, err error) {
	defer metrics.ObserveAstroCall("typed", time.Now(), &err)

	b, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return decode(b)
}

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	requestID := uuid.NewString()
	log := c.logger.With("request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+AstrosPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", common.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)

	start := time.Now()
	log.Debug(ctx, "astro request", "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "astro request failed", "error", err, "elapsed", time.Since(start))
		return nil, c.mapError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.mapError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn(ctx, "astro request rejected", "status", resp.StatusCode)
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, fmt.Errorf("%w: request failed: %s - %s", common.ErrTransport, resp.Status, string(body))
	}

	log.Debug(ctx, "astro response", "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))
	return body, nil
}

func (c *Client) mapError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", common.ErrTransport, err)
}
