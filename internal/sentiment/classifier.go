package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/moodchat/internal/domain"
	"github.com/pscheid92/moodchat/internal/metrics"
	"github.com/pscheid92/moodchat/internal/platform/retry"
)

const (
	defaultTimeout = 25 * time.Second
	defaultBackoff = 2500 * time.Millisecond

	endpointPrimary  = "primary"
	endpointFallback = "fallback"
)

type Config struct {
	PrimaryURL  string
	FallbackURL string
	// Timeout bounds each individual HTTP attempt.
	Timeout time.Duration
	// RetryBackoff is the fixed wait before the single primary retry.
	RetryBackoff time.Duration
	Clock        clockwork.Clock
}

// Classifier implements domain.Classifier against the external HTTP service.
type Classifier struct {
	client      *http.Client
	primaryURL  string
	fallbackURL string
	retryPolicy retry.Policy
}

func New(cfg Config) *Classifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Classifier{
		client:      &http.Client{Timeout: timeout},
		primaryURL:  cfg.PrimaryURL,
		fallbackURL: cfg.FallbackURL,
		retryPolicy: retry.Policy{
			MaxAttempts: 2,
			Backoff:     backoff,
			Clock:       clock,
			OnRetry: func(attempt int, err error, backoff time.Duration) {
				slog.Warn("Classifier primary overloaded, retrying", "attempt", attempt, "backoff", backoff, "error", err)
			},
		},
	}
}

// Classify labels the given text. It never returns an error: when the primary
// (including its single transient retry) and the fallback are both exhausted,
// the label degrades to neutral.
func (c *Classifier) Classify(ctx context.Context, text string) domain.Label {
	label, err := retry.Do(ctx, c.retryPolicy, classifyAttemptError, func() (domain.Label, error) {
		return c.attempt(ctx, c.primaryURL, endpointPrimary, text)
	})
	if err == nil {
		return label
	}

	label, fallbackErr := c.attempt(ctx, c.fallbackURL, endpointFallback, text)
	if fallbackErr == nil {
		return label
	}

	metrics.ClassifierFallbacksTotal.Inc()
	slog.WarnContext(ctx, "Classifier unavailable, defaulting to neutral",
		"primary_error", err, "fallback_error", fallbackErr)
	return domain.LabelNeutral
}

// attemptError marks one failed HTTP attempt. Status is zero for network and
// parse failures.
type attemptError struct {
	status int
	cause  error
}

func (e *attemptError) Error() string {
	if e.status != 0 {
		return fmt.Sprintf("classifier attempt failed with status %d", e.status)
	}
	return fmt.Sprintf("classifier attempt failed: %v", e.cause)
}

func (e *attemptError) Unwrap() error {
	return e.cause
}

// transient reports whether the upstream was overloaded or cold-starting.
// Only these statuses earn the primary its single backoff retry.
func (e *attemptError) transient() bool {
	switch e.status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func classifyAttemptError(err error) retry.Action {
	var ae *attemptError
	if errors.As(err, &ae) && ae.transient() {
		return retry.Retry
	}
	return retry.Stop
}

type predictRequest struct {
	Data []string `json:"data"`
}

func (c *Classifier) attempt(ctx context.Context, url, endpoint, text string) (domain.Label, error) {
	start := time.Now()
	defer func() {
		metrics.ClassifierRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	label, err := c.post(ctx, url, text)
	metrics.ClassifierRequestsTotal.WithLabelValues(endpoint, attemptOutcome(err)).Inc()
	return label, err
}

func (c *Classifier) post(ctx context.Context, url, text string) (domain.Label, error) {
	payload, err := json.Marshal(predictRequest{Data: []string{text}})
	if err != nil {
		return domain.LabelNeutral, &attemptError{cause: fmt.Errorf("failed to encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return domain.LabelNeutral, &attemptError{cause: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.LabelNeutral, &attemptError{cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.LabelNeutral, &attemptError{status: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.LabelNeutral, &attemptError{cause: fmt.Errorf("failed to read body: %w", err)}
	}
	if len(raw) == 0 {
		return domain.LabelNeutral, &attemptError{cause: errors.New("empty response body")}
	}

	label, err := parseLabel(raw)
	if err != nil {
		return domain.LabelNeutral, &attemptError{cause: err}
	}
	return label, nil
}

func attemptOutcome(err error) string {
	if err == nil {
		return "success"
	}
	var ae *attemptError
	if errors.As(err, &ae) && ae.transient() {
		return "transient"
	}
	return "failure"
}
