package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"autonomous-agent/internal/di"
	"autonomous-agent/internal/infrastructure/env"
	"autonomous-agent/internal/infrastructure/userinteraction"

	"github.com/fatih/color"
)

var exitWords = map[string]bool{"sair": true, "exit": true, "quit": true}

func main() {
	os.Exit(run())
}

// run returns the exit code so deferred cleanup always happens.
func run() int {
	interactive := flag.Bool("interactive", false, "read tasks until 'sair'")
	maxSteps := flag.Int("max-steps", 0, "step budget per task (overrides MAX_STEPS)")
	flag.Parse()

	envService := env.NewEnvService()
	console := userinteraction.NewConsole(os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	task := strings.TrimSpace(strings.Join(flag.Args(), " "))

	cfg := di.ConfigFromEnv(envService)
	cfg.Reporter = console
	cfg.LogName = task
	if *interactive {
		cfg.LogName = "interactive"
	}
	if *maxSteps > 0 {
		cfg.MaxSteps = *maxSteps
	}
	if !cfg.Color {
		color.NoColor = true
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro de inicialização: %v\n", err)
		return 1
	}
	defer container.Close()

	if !*interactive {
		if task == "" {
			task, err = console.AskTask(ctx)
			if err != nil && !errors.Is(err, io.EOF) {
				container.Logger.Error("Failed to read task", "error", err)
				fmt.Fprintf(os.Stderr, "Erro ao ler tarefa: %v\n", err)
				return 1
			}
		}
		if task == "" {
			fmt.Fprintln(os.Stderr, "uso: agent [-interactive] [-max-steps N] <tarefa>")
			return 2
		}
		runTask(ctx, container, console, task)
		return 0
	}

	for {
		task, err := console.AskTask(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Println()
			} else if !errors.Is(err, io.EOF) {
				container.Logger.Error("Failed to read task", "error", err)
				return 1
			}
			return 0
		}
		if exitWords[strings.ToLower(task)] {
			fmt.Println("👋 Até logo!")
			return 0
		}
		if task == "" {
			continue
		}
		runTask(ctx, container, console, task)
	}
}

func runTask(ctx context.Context, c *di.Container, console *userinteraction.Console, task string) {
	result := c.TaskExecutor.Execute(ctx, task, c.MaxSteps)
	console.ShowHistory(ctx, result.History)
	c.Logger.Info("Task result", "task_id", result.ID, "status", result.Status, "actions", len(result.History))
}
