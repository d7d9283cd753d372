package openaicompat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autonomous-agent/internal/application/port/output"
	"autonomous-agent/internal/infrastructure/llm/ollama"

	"github.com/sashabaranov/go-openai"
)

var _ output.LLMPort = (*OpenAIAdapter)(nil)

// DefaultBaseURL is the OpenAI-compatible surface Ollama serves.
const DefaultBaseURL = "http://localhost:11434/v1"

type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
	Logger      output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	if apiKey == "" {
		// Ollama ignores the key but go-openai always sends the header.
		apiKey = "ollama"
	}
	return Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: DefaultBaseURL,
		Timeout: ollama.DefaultTimeout,
	}
}

// OpenAIAdapter sends the planner prompt as a single user message to a
// chat-completions endpoint.
type OpenAIAdapter struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIAdapter(cfg Config) *OpenAIAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	config.HTTPClient = ollama.NewLoggingClient(cfg.Timeout, cfg.Logger)

	return &OpenAIAdapter{
		client:      openai.NewClientWithConfig(config),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

func (a *OpenAIAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: a.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
