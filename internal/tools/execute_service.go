package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Fuabioo/vanta-mcp/internal/errors"
)

// ExecuteServiceName is the wire name of the service execution tool.
const ExecuteServiceName = "vanta_execute_service"

// ExecuteServiceArgs is the typed argument set of vanta_execute_service.
type ExecuteServiceArgs struct {
	ServiceID  *string        `json:"service_id,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// ExecuteService implements vanta_execute_service.
type ExecuteService struct {
	exec Executor
}

// NewExecuteService returns the tool backed by exec.
func NewExecuteService(exec Executor) *ExecuteService {
	return &ExecuteService{exec: exec}
}

// Definition implements Tool.
func (t *ExecuteService) Definition() mcp.Tool {
	return mcp.NewTool(ExecuteServiceName,
		mcp.WithDescription("Execute VANTA API service"),
		mcp.WithString("service_id",
			mcp.Required(),
			mcp.Description("Identifier of the VANTA service to execute")),
		mcp.WithObject("parameters",
			mcp.Description("Free-form parameters for the service")),
	)
}

// Handle implements Tool.
func (t *ExecuteService) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args ExecuteServiceArgs
	if err := request.BindArguments(&args); err != nil {
		return mcpErrorResult(errors.InvalidArguments(ExecuteServiceName, err)), nil
	}

	result, err := t.exec.Execute(ctx, args)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return jsonResult(result), nil
}
