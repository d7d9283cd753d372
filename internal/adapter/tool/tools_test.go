package tool

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"autonomous-agent/internal/domain/entity"
	"autonomous-agent/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewNopLogger()
	create := NewCreateFileTool(log)
	create.Execute(context.Background(), []string{filepath.Join(dir, "b.txt"), "x"})
	create.Execute(context.Background(), []string{filepath.Join(dir, "a.txt"), "y"})

	result := NewListFilesTool(log).Execute(context.Background(), []string{dir})

	assert.Equal(t, "Arquivos em "+dir+": a.txt, b.txt", result)
}

func TestListFiles_DefaultsToCurrentDir(t *testing.T) {
	result := NewListFilesTool(logger.NewNopLogger()).Execute(context.Background(), nil)

	assert.True(t, strings.HasPrefix(result, "Arquivos em .:"), result)
}

func TestListFiles_MissingPath(t *testing.T) {
	result := NewListFilesTool(logger.NewNopLogger()).Execute(context.Background(), []string{"/definitely/not/here"})

	assert.True(t, strings.HasPrefix(result, "Erro ao listar arquivos:"), result)
}

func TestCreateThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	log := logger.NewNopLogger()

	created := NewCreateFileTool(log).Execute(context.Background(), []string{path, "hello"})
	assert.Equal(t, "Arquivo '"+path+"' criado com sucesso", created)

	read := NewReadFileTool(log).Execute(context.Background(), []string{path})
	assert.Equal(t, "Conteúdo de '"+path+"':\nhello", read)
}

func TestCreateFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	log := logger.NewNopLogger()
	create := NewCreateFileTool(log)

	create.Execute(context.Background(), []string{path, "first"})
	create.Execute(context.Background(), []string{path, "second"})

	read := NewReadFileTool(log).Execute(context.Background(), []string{path})
	assert.True(t, strings.HasSuffix(read, "\nsecond"), read)
}

func TestCreateFile_MissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "a.txt")

	result := NewCreateFileTool(logger.NewNopLogger()).Execute(context.Background(), []string{path, "x"})

	assert.True(t, strings.HasPrefix(result, "Erro ao criar arquivo:"), result)
}

func TestReadFile_Missing(t *testing.T) {
	result := NewReadFileTool(logger.NewNopLogger()).Execute(context.Background(), []string{"/no/such/file.txt"})

	assert.True(t, strings.HasPrefix(result, "Erro ao ler arquivo:"), result)
}

func TestMakeDirectory_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projeto", "docs")
	tool := NewMakeDirectoryTool(logger.NewNopLogger())

	first := tool.Execute(context.Background(), []string{path})
	second := tool.Execute(context.Background(), []string{path})

	want := "Pasta '" + path + "' criada com sucesso"
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
	assert.DirExists(t, path)
}

func TestMakeDirectory_FileInTheWay(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	NewCreateFileTool(logger.NewNopLogger()).Execute(context.Background(), []string{file, ""})

	result := NewMakeDirectoryTool(logger.NewNopLogger()).Execute(context.Background(), []string{filepath.Join(file, "sub")})

	assert.True(t, strings.HasPrefix(result, "Erro ao criar pasta:"), result)
}

func TestCurrentDateTime(t *testing.T) {
	fixed := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)
	tool := NewCurrentDateTimeTool(func() time.Time { return fixed })

	assert.Equal(t, "Data e hora atual: 05/03/2024 07:08:09", tool.Execute(context.Background(), nil))
}

func TestRunCommand_Allowed(t *testing.T) {
	tool := NewRunCommandTool(nil, 0, logger.NewNopLogger())

	result := tool.Execute(context.Background(), []string{"echo hello world"})

	assert.Equal(t, "Resultado:\nhello world\n", result)
}

func TestRunCommand_Ls(t *testing.T) {
	tool := NewRunCommandTool(nil, 0, logger.NewNopLogger())

	result := tool.Execute(context.Background(), []string{"ls"})

	assert.True(t, strings.HasPrefix(result, "Resultado:\n"), result)
}

func TestRunCommand_RejectedSpawnsNothing(t *testing.T) {
	tool := NewRunCommandTool(nil, 0, logger.NewNopLogger())
	spawned := false
	tool.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		spawned = true
		return exec.CommandContext(ctx, name, args...)
	}

	result := tool.Execute(context.Background(), []string{"rm -rf /"})

	assert.Equal(t, "Comando 'rm' não permitido por segurança", result)
	assert.False(t, spawned)
}

func TestRunCommand_Empty(t *testing.T) {
	tool := NewRunCommandTool(nil, 0, logger.NewNopLogger())

	result := tool.Execute(context.Background(), []string{"   "})

	assert.Equal(t, "Erro ao executar comando: "+entity.ErrEmptyCommand.Error(), result)
}

func TestRunCommand_Timeout(t *testing.T) {
	tool := NewRunCommandTool([]string{"sleep"}, 100*time.Millisecond, logger.NewNopLogger())

	start := time.Now()
	result := tool.Execute(context.Background(), []string{"sleep 5"})

	assert.True(t, strings.HasPrefix(result, "Erro ao executar comando: command timed out"), result)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRunCommand_NonZeroExitKeepsStdout(t *testing.T) {
	tool := NewRunCommandTool([]string{"ls"}, time.Second, logger.NewNopLogger())

	result := tool.Execute(context.Background(), []string{"ls /definitely/not/here"})

	assert.Equal(t, "Resultado:\n", result)
}

func TestRunCommand_MissingBinary(t *testing.T) {
	tool := NewRunCommandTool([]string{"no-such-binary-xyz"}, time.Second, logger.NewNopLogger())

	result := tool.Execute(context.Background(), []string{"no-such-binary-xyz"})

	assert.True(t, strings.HasPrefix(result, "Erro ao executar comando:"), result)
}

func TestNewDefaultTools_CatalogOrder(t *testing.T) {
	tools := NewDefaultTools(DefaultConfig(), logger.NewNopLogger())

	names := make([]entity.ToolName, 0, len(tools))
	for _, tl := range tools {
		names = append(names, tl.Spec().Name)
	}
	require.Equal(t, []entity.ToolName{
		entity.ToolListFiles,
		entity.ToolCreateFile,
		entity.ToolReadFile,
		entity.ToolRunCommand,
		entity.ToolMakeDirectory,
		entity.ToolCurrentDateTime,
	}, names)
}
