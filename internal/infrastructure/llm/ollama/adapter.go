package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"autonomous-agent/internal/application/port/output"
)

var _ output.LLMPort = (*OllamaAdapter)(nil)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 120 * time.Second
)

type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  output.LoggerPort
}

func DefaultConfig(baseURL, model string) Config {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return Config{
		BaseURL: baseURL,
		Model:   model,
		Timeout: DefaultTimeout,
	}
}

// OllamaAdapter talks to /api/generate with streaming disabled.
type OllamaAdapter struct {
	baseURL string
	model   string
	client  *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model    string  `json:"model"`
	Response *string `json:"response"`
	Done     bool    `json:"done"`
}

func NewOllamaAdapter(cfg Config) *OllamaAdapter {
	return &OllamaAdapter{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  NewLoggingClient(cfg.Timeout, cfg.Logger),
	}
}

func (a *OllamaAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	data, err := json.Marshal(generateRequest{
		Model:  a.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/api/generate", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if genResp.Response == nil {
		return "", fmt.Errorf("generate response has no 'response' field")
	}

	return *genResp.Response, nil
}
