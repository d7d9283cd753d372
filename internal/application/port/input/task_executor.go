package input

import (
	"context"

	"autonomous-agent/internal/domain/entity"
)

// TaskExecutor runs one task to a terminal state. It never returns an error:
// every failure is folded into the result.
type TaskExecutor interface {
	Execute(ctx context.Context, task string, maxSteps int) *entity.TaskResult
}
