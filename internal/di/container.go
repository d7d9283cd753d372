package di

import (
	"fmt"
	"strings"
	"time"

	"autonomous-agent/internal/adapter/tool"
	"autonomous-agent/internal/application/port/input"
	"autonomous-agent/internal/application/port/output"
	"autonomous-agent/internal/application/service"
	"autonomous-agent/internal/infrastructure/llm/langchain"
	"autonomous-agent/internal/infrastructure/llm/ollama"
	"autonomous-agent/internal/infrastructure/llm/openaicompat"
	"autonomous-agent/internal/infrastructure/logger"
	"autonomous-agent/internal/usecase/executor"
	"autonomous-agent/internal/usecase/planner"
)

const (
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderLangChain = "langchain"
)

type Container struct {
	LLM          output.LLMPort
	Logger       output.LoggerPort
	Tools        output.ToolRegistry
	Planner      *planner.Planner
	TaskExecutor input.TaskExecutor
	MaxSteps     int
}

type Config struct {
	Provider        string
	OllamaURL       string
	Model           string
	APIKey          string
	LLMTimeout      time.Duration
	MaxSteps        int
	CommandTimeout  time.Duration
	AllowedCommands []string
	LogDir          string
	LogLevel        string
	LogName         string
	// Color enables ANSI colors in console output.
	Color bool
	// Reporter receives step progress; nil keeps the loop silent.
	Reporter output.StepReporter
	// LLM overrides provider selection when set.
	LLM output.LLMPort
}

// ConfigFromEnv reads every setting with its documented default.
func ConfigFromEnv(env output.ConfigPort) Config {
	return Config{
		Provider:        strings.ToLower(env.GetWithDefault("LLM_PROVIDER", ProviderOllama)),
		OllamaURL:       env.GetWithDefault("OLLAMA_HOST", ollama.DefaultBaseURL),
		Model:           env.GetWithDefault("OLLAMA_MODEL", ollama.DefaultModel),
		APIKey:          env.GetWithDefault("OPENAI_API_KEY", "ollama"),
		LLMTimeout:      env.GetDuration("LLM_TIMEOUT", ollama.DefaultTimeout),
		MaxSteps:        env.GetInt("MAX_STEPS", executor.DefaultMaxSteps),
		CommandTimeout:  env.GetDuration("COMMAND_TIMEOUT", tool.DefaultCommandTimeout),
		AllowedCommands: env.GetList("ALLOWED_COMMANDS", tool.DefaultAllowedCommands),
		LogDir:          env.GetWithDefault("LOG_DIR", "log"),
		LogLevel:        env.GetWithDefault("LOG_LEVEL", "info"),
		Color:           env.GetBool("COLOR", true),
	}
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(logger.Config{
		Dir:   cfg.LogDir,
		Name:  cfg.LogName,
		Level: cfg.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llm := cfg.LLM
	if llm == nil {
		llm, err = newLLM(cfg, log)
		if err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to create llm: %w", err)
		}
	}

	tools := service.NewToolRegistry()
	toolCfg := tool.DefaultConfig()
	if len(cfg.AllowedCommands) > 0 {
		toolCfg.AllowedCommands = cfg.AllowedCommands
	}
	if cfg.CommandTimeout > 0 {
		toolCfg.CommandTimeout = cfg.CommandTimeout
	}
	for _, t := range tool.NewDefaultTools(toolCfg, log) {
		tools.Register(t)
	}

	pl, err := planner.New(llm, tools, log)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create planner: %w", err)
	}

	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = executor.DefaultMaxSteps
	}

	uc := executor.New(pl, tools, log, executor.WithReporter(cfg.Reporter))

	log.Info("Container ready",
		"provider", providerName(cfg),
		"model", cfg.Model,
		"tools", len(tools.All()),
		"maxSteps", maxSteps,
	)

	return &Container{
		LLM:          llm,
		Logger:       log,
		Tools:        tools,
		Planner:      pl,
		TaskExecutor: uc,
		MaxSteps:     maxSteps,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func newLLM(cfg Config, log output.LoggerPort) (output.LLMPort, error) {
	timeout := cfg.LLMTimeout
	if timeout <= 0 {
		timeout = ollama.DefaultTimeout
	}

	switch providerName(cfg) {
	case ProviderOllama:
		llmCfg := ollama.DefaultConfig(cfg.OllamaURL, cfg.Model)
		llmCfg.Timeout = timeout
		llmCfg.Logger = log
		return ollama.NewOllamaAdapter(llmCfg), nil

	case ProviderOpenAI:
		llmCfg := openaicompat.DefaultConfig(cfg.APIKey, modelOrDefault(cfg.Model))
		if cfg.OllamaURL != "" {
			llmCfg.BaseURL = strings.TrimRight(cfg.OllamaURL, "/") + "/v1"
		}
		llmCfg.Timeout = timeout
		llmCfg.Logger = log
		return openaicompat.NewOpenAIAdapter(llmCfg), nil

	case ProviderLangChain:
		return langchain.NewLangChainAdapter(langchain.Config{
			ServerURL: cfg.OllamaURL,
			Model:     modelOrDefault(cfg.Model),
			Timeout:   timeout,
			Logger:    log,
		})

	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

func providerName(cfg Config) string {
	if cfg.Provider == "" {
		return ProviderOllama
	}
	return strings.ToLower(cfg.Provider)
}

func modelOrDefault(model string) string {
	if model == "" {
		return ollama.DefaultModel
	}
	return model
}
