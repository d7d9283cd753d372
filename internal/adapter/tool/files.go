package tool

import (
	"context"
	"fmt"
	"os"
	"strings"

	"autonomous-agent/internal/application/port/output"
	"autonomous-agent/internal/domain/entity"
)

type ListFilesTool struct {
	logger output.LoggerPort
}

func NewListFilesTool(logger output.LoggerPort) *ListFilesTool {
	return &ListFilesTool{logger: logger}
}

func (t *ListFilesTool) Spec() entity.ToolSpec {
	return entity.ToolSpec{
		Name:      entity.ToolListFiles,
		Signature: "caminho",
		Purpose:   "Lista arquivos em um diretório",
		Example:   `listar_arquivos("/tmp")`,
		MinArgs:   0,
		MaxArgs:   1,
	}
}

func (t *ListFilesTool) Execute(ctx context.Context, args []string) string {
	path := arg(args, 0, ".")

	entries, err := os.ReadDir(path)
	if err != nil {
		t.logger.Warn("List files failed", "path", path, "error", err)
		return fmt.Sprintf("Erro ao listar arquivos: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return fmt.Sprintf("Arquivos em %s: %s", path, strings.Join(names, ", "))
}

type CreateFileTool struct {
	logger output.LoggerPort
}

func NewCreateFileTool(logger output.LoggerPort) *CreateFileTool {
	return &CreateFileTool{logger: logger}
}

func (t *CreateFileTool) Spec() entity.ToolSpec {
	return entity.ToolSpec{
		Name:      entity.ToolCreateFile,
		Signature: "nome, conteudo",
		Purpose:   "Cria um arquivo",
		Example:   `criar_arquivo("teste.txt", "Olá mundo")`,
		MinArgs:   2,
		MaxArgs:   2,
	}
}

func (t *CreateFileTool) Execute(ctx context.Context, args []string) string {
	name := arg(args, 0, "")
	content := arg(args, 1, "")

	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.logger.Warn("Create file failed", "name", name, "error", err)
		return fmt.Sprintf("Erro ao criar arquivo: %v", err)
	}
	return fmt.Sprintf("Arquivo '%s' criado com sucesso", name)
}

type ReadFileTool struct {
	logger output.LoggerPort
}

func NewReadFileTool(logger output.LoggerPort) *ReadFileTool {
	return &ReadFileTool{logger: logger}
}

func (t *ReadFileTool) Spec() entity.ToolSpec {
	return entity.ToolSpec{
		Name:      entity.ToolReadFile,
		Signature: "nome",
		Purpose:   "Lê conteúdo de um arquivo",
		Example:   `ler_arquivo("teste.txt")`,
		MinArgs:   1,
		MaxArgs:   1,
	}
}

func (t *ReadFileTool) Execute(ctx context.Context, args []string) string {
	name := arg(args, 0, "")

	data, err := os.ReadFile(name)
	if err != nil {
		t.logger.Warn("Read file failed", "name", name, "error", err)
		return fmt.Sprintf("Erro ao ler arquivo: %v", err)
	}
	return fmt.Sprintf("Conteúdo de '%s':\n%s", name, data)
}

type MakeDirectoryTool struct {
	logger output.LoggerPort
}

func NewMakeDirectoryTool(logger output.LoggerPort) *MakeDirectoryTool {
	return &MakeDirectoryTool{logger: logger}
}

func (t *MakeDirectoryTool) Spec() entity.ToolSpec {
	return entity.ToolSpec{
		Name:      entity.ToolMakeDirectory,
		Signature: "nome",
		Purpose:   "Cria uma pasta",
		Example:   `criar_pasta("minha_pasta")`,
		MinArgs:   1,
		MaxArgs:   1,
	}
}

func (t *MakeDirectoryTool) Execute(ctx context.Context, args []string) string {
	name := arg(args, 0, "")

	if err := os.MkdirAll(name, 0755); err != nil {
		t.logger.Warn("Make directory failed", "name", name, "error", err)
		return fmt.Sprintf("Erro ao criar pasta: %v", err)
	}
	return fmt.Sprintf("Pasta '%s' criada com sucesso", name)
}
