package prompts

import (
	"bytes"
	"strings"
	"text/template"

	"autonomous-agent/internal/domain/entity"
)

type ToolInfo struct {
	Name      string
	Signature string
	Purpose   string
	Example   string
}

type ToolCatalogData struct {
	Tools []ToolInfo
}

type PlannerPromptData struct {
	Catalog      string
	Task         string
	DoneSentinel string
}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// GenerateToolCatalog renders the tool list in the order given.
func GenerateToolCatalog(baseTemplate string, specs []entity.ToolSpec) (string, error) {
	infos := make([]ToolInfo, 0, len(specs))
	for _, s := range specs {
		infos = append(infos, ToolInfo{
			Name:      s.Name.String(),
			Signature: s.Signature,
			Purpose:   s.Purpose,
			Example:   s.Example,
		})
	}

	return render("catalog", baseTemplate, ToolCatalogData{Tools: infos})
}

// PlannerTemplate is a parsed planner prompt, reused on every step.
type PlannerTemplate struct {
	tmpl    *template.Template
	catalog string
}

func NewPlannerTemplate(baseTemplate, catalog string) (*PlannerTemplate, error) {
	tmpl, err := template.New("planner").Funcs(funcs).Parse(baseTemplate)
	if err != nil {
		return nil, err
	}
	return &PlannerTemplate{tmpl: tmpl, catalog: catalog}, nil
}

func (p *PlannerTemplate) Render(task string) (string, error) {
	var buf bytes.Buffer
	err := p.tmpl.Execute(&buf, PlannerPromptData{
		Catalog:      p.catalog,
		Task:         task,
		DoneSentinel: entity.DecisionDone,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func render(name, baseTemplate string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
