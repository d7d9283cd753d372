package output

import (
	"context"

	"autonomous-agent/internal/domain/entity"
)

// StepReporter receives progress of a running task for display.
type StepReporter interface {
	ShowTask(ctx context.Context, task string)
	ShowStep(ctx context.Context, step, maxSteps int)
	ShowThinking(ctx context.Context, reasoning string)
	ShowToolStart(ctx context.Context, toolName string, params []string)
	ShowToolResult(ctx context.Context, toolName, result string)
	ShowOutcome(ctx context.Context, status entity.TaskStatus)
	ShowHistory(ctx context.Context, records []entity.ActionRecord)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) ShowTask(context.Context, string) {}
func (NopReporter) ShowStep(context.Context, int, int) {}
func (NopReporter) ShowThinking(context.Context, string) {}
func (NopReporter) ShowToolStart(context.Context, string, []string) {}
func (NopReporter) ShowToolResult(context.Context, string, string) {}
func (NopReporter) ShowOutcome(context.Context, entity.TaskStatus) {}
func (NopReporter) ShowHistory(context.Context, []entity.ActionRecord) {}
