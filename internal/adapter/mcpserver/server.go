package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"autonomous-agent/internal/application/port/input"
	"autonomous-agent/internal/application/port/output"
	"autonomous-agent/internal/domain/entity"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const RunTaskTool = "run_task"

// Server exposes the tool registry and the agent loop over MCP.
type Server struct {
	mcp      *server.MCPServer
	tools    output.ToolRegistry
	executor input.TaskExecutor
	maxSteps int
	logger   output.LoggerPort
}

func New(
	name, version string,
	tools output.ToolRegistry,
	executor input.TaskExecutor,
	maxSteps int,
	logger output.LoggerPort,
) *Server {
	s := &Server{
		mcp:      server.NewMCPServer(name, version, server.WithLogging()),
		tools:    tools,
		executor: executor,
		maxSteps: maxSteps,
		logger:   logger,
	}

	for _, spec := range tools.Specs() {
		s.registerTool(spec)
	}
	s.registerRunTask()

	return s
}

func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// ServeStdio blocks until stdin closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTool(spec entity.ToolSpec) {
	opts := []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("%s. Exemplo: %s", spec.Purpose, spec.Example)),
	}
	for i, param := range spec.ParamNames() {
		propOpts := []mcp.PropertyOption{mcp.Description(param)}
		if i < spec.MinArgs {
			propOpts = append(propOpts, mcp.Required())
		}
		opts = append(opts, mcp.WithString(param, propOpts...))
	}

	name := spec.Name.String()
	s.mcp.AddTool(mcp.NewTool(name, opts...), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})
		return s.HandleTool(ctx, name, args), nil
	})
}

func (s *Server) registerRunTask() {
	s.mcp.AddTool(mcp.NewTool(RunTaskTool,
		mcp.WithDescription("Executa uma tarefa com o agente autônomo e retorna o histórico"),
		mcp.WithString("task", mcp.Required(), mcp.Description("Tarefa em linguagem natural")),
		mcp.WithNumber("max_steps", mcp.Description("Limite de passos (padrão do servidor se omitido)")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})
		task, _ := args["task"].(string)
		maxSteps := s.maxSteps
		if v, ok := args["max_steps"].(float64); ok && v > 0 {
			maxSteps = int(v)
		}
		return s.HandleRunTask(ctx, task, maxSteps), nil
	})
}

// HandleTool maps named MCP arguments onto the tool's positional parameters.
// Optional trailing parameters are dropped when absent.
func (s *Server) HandleTool(ctx context.Context, name string, args map[string]interface{}) *mcp.CallToolResult {
	tool, ok := s.tools.Get(entity.ToolName(name))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Ferramenta '%s' não existe", name))
	}

	spec := tool.Spec()
	var params []string
	for i, param := range spec.ParamNames() {
		v, present := args[param]
		if !present {
			if i < spec.MinArgs {
				return mcp.NewToolResultError(fmt.Sprintf("parâmetro obrigatório ausente: %s", param))
			}
			break
		}
		params = append(params, stringify(v))
	}

	s.logger.WithField("tool", name).Info("MCP tool call", "params", params)
	return mcp.NewToolResultText(tool.Execute(ctx, params))
}

func (s *Server) HandleRunTask(ctx context.Context, task string, maxSteps int) *mcp.CallToolResult {
	if strings.TrimSpace(task) == "" {
		return mcp.NewToolResultError("task is required")
	}

	result := s.executor.Execute(ctx, task, maxSteps)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}

	s.logger.Info("MCP task finished", "task_id", result.ID, "status", result.Status)
	return mcp.NewToolResultText(string(data))
}

func stringify(v interface{}) string {
	if str, ok := v.(string); ok {
		return str
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
