package ollama

import (
	"net/http"
	"time"

	"autonomous-agent/internal/application/port/output"
)

// loggingTransport logs request metadata only; prompts can be large.
type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	t.logger.Debug("HTTP Request",
		"method", req.Method,
		"url", req.URL.String(),
		"contentLength", req.ContentLength,
	)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Warn("HTTP Request failed", "url", req.URL.String(), "error", err)
		return nil, err
	}

	t.logger.Debug("HTTP Response",
		"status", resp.Status,
		"statusCode", resp.StatusCode,
		"durationMs", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

// NewLoggingClient wraps the default transport. A nil logger returns a plain client.
func NewLoggingClient(timeout time.Duration, logger output.LoggerPort) *http.Client {
	client := &http.Client{Timeout: timeout}
	if logger != nil {
		client.Transport = &loggingTransport{
			base:   http.DefaultTransport,
			logger: logger,
		}
	}
	return client
}
