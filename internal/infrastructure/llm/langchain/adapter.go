package langchain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autonomous-agent/internal/application/port/output"
	"autonomous-agent/internal/infrastructure/llm/ollama"

	"github.com/tmc/langchaingo/llms"
	lcollama "github.com/tmc/langchaingo/llms/ollama"
)

var _ output.LLMPort = (*LangChainAdapter)(nil)

type Config struct {
	ServerURL   string
	Model       string
	Temperature float64
	Timeout     time.Duration
	Logger      output.LoggerPort
}

// LangChainAdapter routes generation through langchaingo's Ollama model.
type LangChainAdapter struct {
	model       llms.Model
	temperature float64
}

func NewLangChainAdapter(cfg Config) (*LangChainAdapter, error) {
	if cfg.Model == "" {
		return nil, errors.New("langchain: model is required")
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = ollama.DefaultBaseURL
	}

	llm, err := lcollama.New(
		lcollama.WithModel(cfg.Model),
		lcollama.WithServerURL(cfg.ServerURL),
		lcollama.WithHTTPClient(ollama.NewLoggingClient(cfg.Timeout, cfg.Logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("create langchain ollama model: %w", err)
	}

	return NewFromModel(llm, cfg.Temperature), nil
}

// NewFromModel wraps any langchaingo model.
func NewFromModel(model llms.Model, temperature float64) *LangChainAdapter {
	return &LangChainAdapter{model: model, temperature: temperature}
}

func (a *LangChainAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt, llms.WithTemperature(a.temperature))
	if err != nil {
		return "", fmt.Errorf("langchain generate failed: %w", err)
	}
	return text, nil
}
