package groq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-predictor/internal/domain/prediction"
	"github.com/riskibarqy/matchday-predictor/internal/platform/logging"
	"github.com/riskibarqy/matchday-predictor/internal/platform/resilience"
	"github.com/riskibarqy/matchday-predictor/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL     = "https://api.groq.com/openai/v1"
	defaultModel       = "llama3-8b-8192"
	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
	defaultTimeout     = 30 * time.Second
	maxResponseBytes   = 2 << 20
)

var errGroqTransient = crerr.New("groq transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Model          string
	Temperature    *float64 // nil means 0.7; zero is sent as is
	MaxTokens      int
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client asks an OpenAI-compatible chat completion endpoint for match
// predictions.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	logger      *logging.Logger
	breaker     *resilience.CircuitBreaker
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

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	temperature := defaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logger,
		breaker:     resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Predict sends the rendered prompt as a single system message and returns
// the first choice's content.
func (c *Client) Predict(ctx context.Context, fixture prediction.Fixture) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: completion api key is not configured", usecase.ErrDependencyUnavailable)
	}

	prompt, err := renderPrompt(fixture)
	if err != nil {
		return "", err
	}

	body, err := sonic.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "system", Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", crerr.Wrap(err, "encode completion request")
	}

	var raw []byte
	err = c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.post(ctx, body)
		return reqErr
	}, isTransient)
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "groq circuit breaker rejected request", "state", c.breaker.State())
			return "", fmt.Errorf("%w: prediction service is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		c.logger.WarnContext(ctx, "groq request failed", "model", c.model, "error", err)
		return "", fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
	}

	var decoded chatResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, crerr.Wrap(err, "decode completion response"))
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%w: completion response has no choices", usecase.ErrDependencyUnavailable)
	}

	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}

func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errGroqTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errGroqTransient)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := crerr.Newf("completion status=%d body=%s", resp.StatusCode, abbreviate(raw))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, crerr.Mark(statusErr, errGroqTransient)
		}
		return nil, statusErr
	}

	return raw, nil
}

func isTransient(err error) bool {
	return crerr.Is(err, errGroqTransient)
}

func abbreviate(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

// Disabled is the Predictor wired when no completion API is configured.
type Disabled struct{}

func (Disabled) Predict(context.Context, prediction.Fixture) (string, error) {
	return "", fmt.Errorf("%w: prediction service is disabled", usecase.ErrDependencyUnavailable)
}
