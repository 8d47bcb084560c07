package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/trade-journal/internal/metrics"
	"github.com/yourusername/trade-journal/internal/models"
)

// HTTPSourceConfig holds the knobs for a remote export endpoint.
type HTTPSourceConfig struct {
	URL          string
	Token        string // optional bearer token
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	RateLimit    float64 // requests per second
}

// DefaultHTTPSourceConfig returns recommended defaults.
func DefaultHTTPSourceConfig(url, token string) HTTPSourceConfig {
	return HTTPSourceConfig{
		URL:          url,
		Token:        token,
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		RateLimit:    1.0,
	}
}

// HTTPSource fetches a journal export from a remote endpoint through a
// retrying, rate-limited client.
type HTTPSource struct {
	cfg     HTTPSourceConfig
	client  *retryablehttp.Client
	limiter *rate.Limiter
}

// NewHTTPSource creates a source for the configured endpoint.
func NewHTTPSource(cfg HTTPSourceConfig, logger *logrus.Logger) *HTTPSource {
	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = cfg.Timeout
	client.RetryMax = cfg.MaxRetries
	client.RetryWaitMin = cfg.RetryWaitMin
	client.RetryWaitMax = cfg.RetryWaitMax
	client.CheckRetry = exportRetryPolicy()
	client.Logger = nil
	if logger != nil {
		client.Logger = logger.WithField("component", "importer")
	}

	return &HTTPSource{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

// Name returns the endpoint URL.
func (s *HTTPSource) Name() string {
	return s.cfg.URL
}

// Fetch downloads the export text.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return "", err
	}
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetching %s: %v", models.ErrSourceUnavailable, s.cfg.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned status %d", models.ErrSourceUnavailable, s.cfg.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response from %s: %v", models.ErrSourceUnavailable, s.cfg.URL, err)
	}
	metrics.RecordSourceFetch(time.Since(start).Seconds())

	if len(body) == 0 {
		return "", fmt.Errorf("%w: %s", models.ErrEmptyImport, s.cfg.URL)
	}
	return string(body), nil
}

// Close releases idle connections.
func (s *HTTPSource) Close() {
	s.client.HTTPClient.CloseIdleConnections()
}

// exportRetryPolicy retries network errors, rate limiting and server
// errors; other client errors fail immediately.
func exportRetryPolicy() retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return true, err
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return true, nil
		}
		return false, nil
	}
}
