package executor

import (
	"context"
	"fmt"
	"time"

	"autonomous-agent/internal/application/port/input"
	"autonomous-agent/internal/application/port/output"
	"autonomous-agent/internal/domain/entity"

	"github.com/google/uuid"
)

var _ input.TaskExecutor = (*UseCase)(nil)

const DefaultMaxSteps = 5

// Planner produces the next decision for the current task text.
type Planner interface {
	Plan(ctx context.Context, task string) entity.Decision
}

type UseCase struct {
	planner  Planner
	tools    output.ToolRegistry
	logger   output.LoggerPort
	reporter output.StepReporter
	now      func() time.Time
}

type Option func(*UseCase)

func WithReporter(r output.StepReporter) Option {
	return func(uc *UseCase) {
		if r != nil {
			uc.reporter = r
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

func New(
	planner Planner,
	tools output.ToolRegistry,
	logger output.LoggerPort,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		planner:  planner,
		tools:    tools,
		logger:   logger,
		reporter: output.NopReporter{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute plans and runs at most maxSteps actions. History and the task
// text live only for this call.
func (uc *UseCase) Execute(ctx context.Context, task string, maxSteps int) *entity.TaskResult {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	result := &entity.TaskResult{
		ID:     uuid.NewString(),
		Goal:   task,
		Status: entity.TaskStatusRunning,
	}
	log := uc.logger.WithFields(map[string]any{
		"task_id":  result.ID,
		"maxSteps": maxSteps,
	})
	log.Info("Task started", "task", task)
	uc.reporter.ShowTask(ctx, task)

	var history entity.History
	current := task

	for step := 1; step <= maxSteps; step++ {
		uc.reporter.ShowStep(ctx, step, maxSteps)
		result.Steps = step

		decision := uc.planner.Plan(ctx, current)
		result.Reasoning = decision.Reasoning
		uc.reporter.ShowThinking(ctx, decision.Reasoning)
		log.Debug("Decision", "step", step, "tool", decision.Tool, "params", []string(decision.Parameters))

		if decision.IsDone() {
			result.Status = entity.TaskStatusDone
			break
		}
		if decision.IsError() {
			log.Warn("Planning failed", "step", step, "reasoning", decision.Reasoning)
			result.Status = entity.TaskStatusFailed
			break
		}

		params := []string(decision.Parameters)
		uc.reporter.ShowToolStart(ctx, decision.Tool, params)

		observation := uc.executeTool(ctx, log, decision.Tool, params)
		uc.reporter.ShowToolResult(ctx, decision.Tool, observation)

		history.Append(entity.ActionRecord{
			Tool:       decision.Tool,
			Parameters: params,
			Result:     observation,
			Timestamp:  uc.now(),
		})

		current = fmt.Sprintf("%s\n\nÚltima ação: %s\nResultado: %s", current, decision.Tool, observation)
	}

	if !result.Status.Terminal() {
		result.Status = entity.TaskStatusExhausted
	}
	result.History = history.Records()
	result.FinalTask = current

	uc.reporter.ShowOutcome(ctx, result.Status)
	log.Info("Task finished", "status", result.Status, "steps", result.Steps, "actions", len(result.History))
	return result
}

// executeTool never fails; unknown tools, arity mismatches and panics are
// reported in the returned text.
func (uc *UseCase) executeTool(ctx context.Context, log output.LoggerPort, name string, params []string) (observation string) {
	tool, ok := uc.tools.Get(entity.ToolName(name))
	if !ok {
		log.Warn("Unknown tool called", "name", name, "error", entity.ErrUnknownTool)
		return fmt.Sprintf("Ferramenta '%s' não existe", name)
	}

	spec := tool.Spec()
	if !spec.Accepts(len(params)) {
		err := fmt.Errorf("%w: %s expects %s, got %d", entity.ErrArity, name, arity(spec), len(params))
		log.Warn("Tool execution failed", "name", name, "error", err)
		return fmt.Sprintf("Erro ao executar ferramenta: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("Tool panicked", "name", name, "panic", r)
			observation = fmt.Sprintf("Erro ao executar ferramenta: %v", r)
		}
	}()

	start := time.Now()
	log.Info("Executing tool", "name", name, "params", params)
	observation = tool.Execute(ctx, params)
	log.Debug("Tool completed", "name", name, "resultLen", len(observation), "durationMs", time.Since(start).Milliseconds())
	return observation
}

func arity(spec entity.ToolSpec) string {
	if spec.MinArgs == spec.MaxArgs {
		return fmt.Sprintf("%d parameter(s)", spec.MinArgs)
	}
	return fmt.Sprintf("%d to %d parameters", spec.MinArgs, spec.MaxArgs)
}
