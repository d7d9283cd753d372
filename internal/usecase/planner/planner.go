package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"autonomous-agent/internal/application/port/output"
	"autonomous-agent/internal/domain/entity"
	"autonomous-agent/internal/infrastructure/prompts"
)

// Planner asks the model for the next action. It never returns an error:
// failures come back as an entity.DecisionError decision.
type Planner struct {
	llm      output.LLMPort
	logger   output.LoggerPort
	template *prompts.PlannerTemplate
}

// New renders the tool catalog once; it does not change between steps.
func New(llm output.LLMPort, tools output.ToolRegistry, logger output.LoggerPort) (*Planner, error) {
	catalog, err := prompts.GenerateToolCatalog(prompts.ToolCatalogPrompt, tools.Specs())
	if err != nil {
		return nil, fmt.Errorf("generate tool catalog: %w", err)
	}

	tmpl, err := prompts.NewPlannerTemplate(prompts.PlannerPrompt, catalog)
	if err != nil {
		return nil, fmt.Errorf("parse planner prompt: %w", err)
	}

	return &Planner{
		llm:      llm,
		logger:   logger,
		template: tmpl,
	}, nil
}

func (p *Planner) Prompt(task string) (string, error) {
	return p.template.Render(task)
}

func (p *Planner) Plan(ctx context.Context, task string) entity.Decision {
	prompt, err := p.Prompt(task)
	if err != nil {
		p.logger.Error("Prompt rendering failed", "error", err)
		return entity.ErrorDecision(fmt.Sprintf("Erro ao pensar: %v", err))
	}

	text, err := p.llm.Generate(ctx, prompt)
	if err != nil {
		p.logger.Error("LLM request failed", "error", err)
		return entity.ErrorDecision(fmt.Sprintf("Erro ao pensar: %v", err))
	}

	p.logger.Debug("LLM responded", "responseLen", len(text))

	decision, err := ParseDecision(text)
	if err != nil {
		p.logger.Warn("Unparsable model output", "error", err, "response", text)
		return entity.ErrorDecision(reasoningFor(err))
	}
	return decision
}

// ParseDecision decodes the text between the first '{' and the last '}'.
// Anything around the object is ignored; nothing else is repaired.
func ParseDecision(text string) (entity.Decision, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return entity.Decision{}, entity.ErrNoJSONObject
	}

	var raw struct {
		Reasoning  string        `json:"raciocinio"`
		Tool       *string       `json:"ferramenta"`
		Parameters entity.Params `json:"parametros"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return entity.Decision{}, fmt.Errorf("decode decision: %w", err)
	}
	if raw.Tool == nil {
		return entity.Decision{}, entity.ErrMissingTool
	}

	params := raw.Parameters
	if params == nil {
		params = entity.Params{}
	}

	return entity.Decision{
		Reasoning:  raw.Reasoning,
		Tool:       strings.TrimSpace(*raw.Tool),
		Parameters: params,
	}, nil
}

func reasoningFor(err error) string {
	if errors.Is(err, entity.ErrNoJSONObject) {
		return "Não consegui gerar resposta válida"
	}
	return fmt.Sprintf("Erro ao pensar: %v", err)
}
