package tool

import (
	"time"

	"autonomous-agent/internal/application/port/output"
)

var (
	_ output.ToolPort = (*ListFilesTool)(nil)
	_ output.ToolPort = (*CreateFileTool)(nil)
	_ output.ToolPort = (*ReadFileTool)(nil)
	_ output.ToolPort = (*RunCommandTool)(nil)
	_ output.ToolPort = (*MakeDirectoryTool)(nil)
	_ output.ToolPort = (*CurrentDateTimeTool)(nil)
)

var DefaultAllowedCommands = []string{"ls", "pwd", "date", "whoami", "echo"}

const DefaultCommandTimeout = 5 * time.Second

type Config struct {
	AllowedCommands []string
	CommandTimeout  time.Duration
	Clock           func() time.Time
}

func DefaultConfig() Config {
	return Config{
		AllowedCommands: DefaultAllowedCommands,
		CommandTimeout:  DefaultCommandTimeout,
		Clock:           time.Now,
	}
}

// NewDefaultTools returns the fixed tool set in catalog order.
func NewDefaultTools(cfg Config, logger output.LoggerPort) []output.ToolPort {
	return []output.ToolPort{
		NewListFilesTool(logger),
		NewCreateFileTool(logger),
		NewReadFileTool(logger),
		NewRunCommandTool(cfg.AllowedCommands, cfg.CommandTimeout, logger),
		NewMakeDirectoryTool(logger),
		NewCurrentDateTimeTool(cfg.Clock),
	}
}

func arg(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}
