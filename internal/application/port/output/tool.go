package output

import (
	"context"

	"autonomous-agent/internal/domain/entity"
)

// ToolPort is a local capability. Execute never fails: every error is
// rendered into the returned text.
type ToolPort interface {
	Spec() entity.ToolSpec
	Execute(ctx context.Context, args []string) string
}

type ToolRegistry interface {
	Register(tool ToolPort)
	Get(name entity.ToolName) (ToolPort, bool)
	All() []ToolPort
	Specs() []entity.ToolSpec
}
