package main

import (
	"fmt"
	"os"

	"autonomous-agent/internal/adapter/mcpserver"
	"autonomous-agent/internal/di"
	"autonomous-agent/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	// stdout carries the protocol; no step reporter here.
	cfg := di.ConfigFromEnv(envService)
	cfg.LogName = "mcp-server"

	container, err := di.NewContainer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Startup error: %v\n", err)
		os.Exit(1)
	}
	defer container.Close()

	s := mcpserver.New(
		"autonomous-agent",
		"1.0.0",
		container.Tools,
		container.TaskExecutor,
		container.MaxSteps,
		container.Logger,
	)

	container.Logger.Info("MCP server listening on stdio")
	if err := s.ServeStdio(); err != nil {
		container.Logger.Error("Server error", "error", err)
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		container.Close()
		os.Exit(1)
	}
}
