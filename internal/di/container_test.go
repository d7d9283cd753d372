package di

import (
	"context"
	"testing"
	"time"

	"autonomous-agent/internal/domain/entity"
	"autonomous-agent/internal/infrastructure/llm/langchain"
	"autonomous-agent/internal/infrastructure/llm/ollama"
	"autonomous-agent/internal/infrastructure/llm/openaicompat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapConfig map[string]string

func (m mapConfig) GetWithDefault(key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func (m mapConfig) GetBool(key string, def bool) bool {
	switch m[key] {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

func (m mapConfig) GetInt(key string, def int) int {
	if m[key] == "7" {
		return 7
	}
	return def
}

func (m mapConfig) GetDuration(key string, def time.Duration) time.Duration { return def }

func (m mapConfig) GetList(key string, def []string) []string {
	if v, ok := m[key]; ok {
		return []string{v}
	}
	return def
}

type cannedLLM struct{ response string }

func (c cannedLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return c.response, nil
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := ConfigFromEnv(mapConfig{})

	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaURL)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, "ollama", cfg.APIKey)
	assert.Equal(t, 120*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 5, cfg.MaxSteps)
	assert.Equal(t, 5*time.Second, cfg.CommandTimeout)
	assert.Equal(t, []string{"ls", "pwd", "date", "whoami", "echo"}, cfg.AllowedCommands)
	assert.Equal(t, "log", cfg.LogDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Color)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	cfg := ConfigFromEnv(mapConfig{
		"LLM_PROVIDER":     "LangChain",
		"OLLAMA_MODEL":     "qwen2.5",
		"MAX_STEPS":        "7",
		"ALLOWED_COMMANDS": "echo",
		"COLOR":            "false",
	})

	assert.Equal(t, ProviderLangChain, cfg.Provider)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 7, cfg.MaxSteps)
	assert.Equal(t, []string{"echo"}, cfg.AllowedCommands)
	assert.False(t, cfg.Color)
}

func TestNewContainer_WiresLoop(t *testing.T) {
	c, err := NewContainer(Config{
		LLM: cannedLLM{response: `{"raciocinio":"pronto","ferramenta":"CONCLUIDO","parametros":[]}`},
	})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 5, c.MaxSteps)
	assert.Len(t, c.Tools.All(), 6)

	result := c.TaskExecutor.Execute(context.Background(), "nada", c.MaxSteps)
	assert.Equal(t, entity.TaskStatusDone, result.Status)
	assert.Equal(t, "pronto", result.Reasoning)
}

func TestNewLLM_SelectsProvider(t *testing.T) {
	tests := []struct {
		provider string
		check    func(t *testing.T, v any)
	}{
		{"", func(t *testing.T, v any) { assert.IsType(t, &ollama.OllamaAdapter{}, v) }},
		{"ollama", func(t *testing.T, v any) { assert.IsType(t, &ollama.OllamaAdapter{}, v) }},
		{"OpenAI", func(t *testing.T, v any) { assert.IsType(t, &openaicompat.OpenAIAdapter{}, v) }},
		{"langchain", func(t *testing.T, v any) { assert.IsType(t, &langchain.LangChainAdapter{}, v) }},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			llm, err := newLLM(Config{Provider: tt.provider, OllamaURL: "http://localhost:11434"}, nil)
			require.NoError(t, err)
			tt.check(t, llm)
		})
	}
}

func TestNewLLM_UnknownProvider(t *testing.T) {
	_, err := newLLM(Config{Provider: "gemini"}, nil)
	assert.ErrorContains(t, err, `unknown LLM provider "gemini"`)
}
