package tool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"autonomous-agent/internal/application/port/output"
	"autonomous-agent/internal/domain/entity"
)

// RunCommandTool runs allow-listed commands. Only the first word is checked;
// the rest is passed through as arguments without a shell.
type RunCommandTool struct {
	allowed map[string]struct{}
	timeout time.Duration
	logger  output.LoggerPort

	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func NewRunCommandTool(allowed []string, timeout time.Duration, logger output.LoggerPort) *RunCommandTool {
	if len(allowed) == 0 {
		allowed = DefaultAllowedCommands
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	set := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		set[strings.TrimSpace(name)] = struct{}{}
	}

	return &RunCommandTool{
		allowed: set,
		timeout: timeout,
		logger:  logger,
		command: exec.CommandContext,
	}
}

func (t *RunCommandTool) Spec() entity.ToolSpec {
	return entity.ToolSpec{
		Name:      entity.ToolRunCommand,
		Signature: "comando",
		Purpose:   "Executa comando shell seguro",
		Example:   `executar_comando("ls -la")`,
		MinArgs:   1,
		MaxArgs:   1,
	}
}

func (t *RunCommandTool) Execute(ctx context.Context, args []string) string {
	fields := strings.Fields(arg(args, 0, ""))
	if len(fields) == 0 {
		return fmt.Sprintf("Erro ao executar comando: %v", entity.ErrEmptyCommand)
	}

	base := fields[0]
	if !t.Allowed(base) {
		t.logger.Warn("Command rejected", "command", base, "error", entity.ErrCommandNotAllowed)
		return fmt.Sprintf("Comando '%s' não permitido por segurança", base)
	}

	stdout, err := t.run(ctx, base, fields[1:])
	if err != nil {
		t.logger.Warn("Command failed", "command", base, "error", err)
		return fmt.Sprintf("Erro ao executar comando: %v", err)
	}
	return fmt.Sprintf("Resultado:\n%s", stdout)
}

func (t *RunCommandTool) Allowed(base string) bool {
	_, ok := t.allowed[base]
	return ok
}

// run returns stdout even when the command exits non-zero.
func (t *RunCommandTool) run(ctx context.Context, name string, args []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd := t.command(ctx, name, args...)
	cmd.WaitDelay = time.Second

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%w after %s", entity.ErrCommandTimeout, t.timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", err
		}
		t.logger.Debug("Command exited non-zero", "command", name, "code", exitErr.ExitCode())
	}
	return stdout.String(), nil
}
