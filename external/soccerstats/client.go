package soccerstats

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-predictor/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchday-predictor/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 6 << 20

	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	acceptHTML     = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguage = "en-US,en;q=0.5"
)

type ClientConfig struct {
	HTTPClient   *http.Client
	Timeout      time.Duration
	MaxBodyBytes int64
	Logger       *logging.Logger
}

// Client downloads standings pages. Every call issues exactly one GET; there
// is no retry, cache or request coalescing.
type Client struct {
	httpClient   *http.Client
	maxBodyBytes int64
	logger       *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return &Client{
		httpClient:   httpClient,
		maxBodyBytes: maxBody,
		logger:       logger,
	}
}

// FetchStandings downloads and parses the standings page at pageURL.
// Timeouts wrap usecase.ErrUpstreamTimeout; every other failure wraps
// usecase.ErrUpstreamUnavailable.
func (c *Client) FetchStandings(ctx context.Context, pageURL string) (leaguestanding.Page, error) {
	raw, err := c.get(ctx, pageURL)
	if err != nil {
		c.logger.WarnContext(ctx, "soccerstats request failed", "url", pageURL, "error", err)
		return leaguestanding.Page{}, err
	}

	page, err := ParsePage(bytes.NewReader(raw))
	if err != nil {
		return leaguestanding.Page{}, fmt.Errorf("%w: %v", usecase.ErrUpstreamUnavailable, err)
	}

	return page, nil
}

func (c *Client) get(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstreamUnavailable, crerr.Wrap(err, "build request"))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHTML)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(crerr.Wrap(err, "send request"))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, classifyTransportError(crerr.Wrap(err, "read response body"))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstreamUnavailable, crerr.Newf("status=%d", resp.StatusCode))
	}
	// Oversized pages are rejected, never parsed partially.
	if int64(len(raw)) > c.maxBodyBytes {
		return nil, fmt.Errorf("%w: %v", usecase.ErrUpstreamUnavailable, crerr.Newf("response body exceeds %d bytes", c.maxBodyBytes))
	}

	return raw, nil
}

func classifyTransportError(err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %v", usecase.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", usecase.ErrUpstreamUnavailable, err)
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(err.Error(), "Client.Timeout exceeded")
}
