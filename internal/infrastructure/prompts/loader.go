package prompts

import (
	_ "embed"
)

//go:embed planner.txt
var PlannerPrompt string

//go:embed catalog.txt
var ToolCatalogPrompt string
