package userinteraction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"autonomous-agent/internal/application/port/output"
	"autonomous-agent/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.StepReporter = (*Console)(nil)

const historyResultLimit = 100

type Console struct {
	reader *bufio.Reader
	out    io.Writer
	// pending holds a read that outlived a cancelled AskTask.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// AskTask prompts for the next task. It returns ctx.Err() when ctx is done
// before a line arrives; io.EOF is returned as is.
func (c *Console) AskTask(ctx context.Context) (string, error) {
	color.New(color.FgMagenta, color.Bold).Fprint(c.out, "\n🎯 Digite sua tarefa (ou 'sair' para terminar): ")

	if c.pending == nil {
		c.pending = make(chan readResult, 1)
		go func(ch chan<- readResult) {
			line, err := c.reader.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}(c.pending)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-c.pending:
		c.pending = nil
		line := strings.TrimSpace(res.line)
		if res.err != nil {
			if res.err == io.EOF && line != "" {
				return line, nil
			}
			return "", res.err
		}
		return line, nil
	}
}

func (c *Console) ShowTask(ctx context.Context, task string) {
	color.New(color.FgCyan, color.Bold).Fprintf(c.out, "\n🚀 Iniciando tarefa: %s\n", task)
}

func (c *Console) ShowStep(ctx context.Context, step, maxSteps int) {
	color.New(color.FgCyan, color.Bold).Fprintf(c.out, "\n━━━ Passo %d/%d ━━━\n", step, maxSteps)
}

func (c *Console) ShowThinking(ctx context.Context, reasoning string) {
	if reasoning == "" {
		return
	}
	color.New(color.FgBlue).Fprint(c.out, "💭 Pensando: ")
	color.New(color.Faint).Fprintln(c.out, truncate(reasoning, 500))
}

func (c *Console) ShowToolStart(ctx context.Context, toolName string, params []string) {
	icon := toolIcon(toolName)
	color.New(color.FgYellow, color.Bold).Fprintf(c.out, "%s Executando: %s\n", icon, toolName)
	if len(params) > 0 {
		color.New(color.Faint).Fprintf(c.out, "   Parâmetros: %s\n", formatParams(params))
	}
}

func (c *Console) ShowToolResult(ctx context.Context, toolName, result string) {
	if isErrorResult(result) {
		color.New(color.FgRed).Fprint(c.out, "❌ ")
		color.New(color.Faint).Fprintln(c.out, truncate(result, 300))
		return
	}
	color.New(color.FgGreen).Fprintf(c.out, "✓ %s\n", truncate(result, 300))
}

func (c *Console) ShowOutcome(ctx context.Context, status entity.TaskStatus) {
	switch status {
	case entity.TaskStatusDone:
		color.New(color.FgGreen, color.Bold).Fprintln(c.out, "\n✅ Tarefa concluída!")
	case entity.TaskStatusFailed:
		color.New(color.FgRed, color.Bold).Fprintln(c.out, "\n❌ Erro na tarefa")
	case entity.TaskStatusExhausted:
		color.New(color.FgYellow, color.Bold).Fprintln(c.out, "\n⚠️ Limite de passos atingido")
	}
}

func (c *Console) ShowHistory(ctx context.Context, records []entity.ActionRecord) {
	color.New(color.FgCyan, color.Bold).Fprintln(c.out, "\n📚 Histórico de ações:")
	if len(records) == 0 {
		color.New(color.Faint).Fprintln(c.out, "   (nenhuma ação executada)")
		return
	}

	for i, rec := range records {
		color.New(color.Bold).Fprintf(c.out, "%d. %s(%s)\n", i+1, rec.Tool, formatParams(rec.Parameters))
		fmt.Fprintf(c.out, "   Resultado: %s\n", truncate(rec.Result, historyResultLimit))
		color.New(color.Faint).Fprintf(c.out, "   Horário: %s\n", rec.Timestamp.Format("15:04:05"))
	}
}

func toolIcon(toolName string) string {
	icons := map[entity.ToolName]string{
		entity.ToolListFiles:       "📂",
		entity.ToolCreateFile:      "📝",
		entity.ToolReadFile:        "📖",
		entity.ToolRunCommand:      "⚙️",
		entity.ToolMakeDirectory:   "📁",
		entity.ToolCurrentDateTime: "🕒",
	}
	if icon, ok := icons[entity.ToolName(toolName)]; ok {
		return icon
	}
	return "🔧"
}

func formatParams(params []string) string {
	quoted := make([]string, len(params))
	for i, p := range params {
		quoted[i] = fmt.Sprintf("%q", truncate(p, 60))
	}
	return strings.Join(quoted, ", ")
}

func isErrorResult(result string) bool {
	return strings.HasPrefix(result, "Erro") ||
		strings.HasPrefix(result, "Ferramenta '") ||
		strings.Contains(result, "não permitido")
}

// truncate cuts at a rune boundary so accented text stays valid.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
