package entity

import "strings"

type ToolName string

const (
	ToolListFiles       ToolName = "listar_arquivos"
	ToolCreateFile      ToolName = "criar_arquivo"
	ToolReadFile        ToolName = "ler_arquivo"
	ToolRunCommand      ToolName = "executar_comando"
	ToolMakeDirectory   ToolName = "criar_pasta"
	ToolCurrentDateTime ToolName = "data_hora"
)

func (t ToolName) String() string {
	return string(t)
}

// ToolSpec is the static metadata a tool publishes for the prompt catalog.
type ToolSpec struct {
	Name      ToolName
	Signature string
	Purpose   string
	Example   string
	MinArgs   int
	MaxArgs   int
}

// Accepts reports whether n positional arguments fit the tool arity.
func (s ToolSpec) Accepts(n int) bool {
	return n >= s.MinArgs && n <= s.MaxArgs
}

// ParamNames returns the positional parameter names listed in Signature.
func (s ToolSpec) ParamNames() []string {
	var names []string
	for _, part := range strings.Split(s.Signature, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
