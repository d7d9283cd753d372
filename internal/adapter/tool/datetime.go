package tool

import (
	"context"
	"fmt"
	"time"

	"autonomous-agent/internal/domain/entity"
)

const dateTimeLayout = "02/01/2006 15:04:05"

type CurrentDateTimeTool struct {
	now func() time.Time
}

func NewCurrentDateTimeTool(now func() time.Time) *CurrentDateTimeTool {
	if now == nil {
		now = time.Now
	}
	return &CurrentDateTimeTool{now: now}
}

func (t *CurrentDateTimeTool) Spec() entity.ToolSpec {
	return entity.ToolSpec{
		Name:    entity.ToolCurrentDateTime,
		Purpose: "Retorna data e hora atual",
		Example: `data_hora()`,
	}
}

func (t *CurrentDateTimeTool) Execute(ctx context.Context, args []string) string {
	return fmt.Sprintf("Data e hora atual: %s", t.now().Format(dateTimeLayout))
}
