package tools

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// recordingExecutor captures every call it receives.
type recordingExecutor struct {
	mu    sync.Mutex
	calls []ExecuteServiceArgs
}

func (e *recordingExecutor) Execute(ctx context.Context, args ExecuteServiceArgs) (ExecutionResult, error) {
	e.mu.Lock()
	e.calls = append(e.calls, args)
	e.mu.Unlock()
	return ExecutionResult{Status: StatusExecuted, ServiceID: args.ServiceID}, nil
}

// failingExecutor returns err for every call.
type failingExecutor struct {
	err error
}

func (e failingExecutor) Execute(ctx context.Context, args ExecuteServiceArgs) (ExecutionResult, error) {
	return ExecutionResult{}, e.err
}

// newTestRequest creates a CallToolRequest for testing.
func newTestRequest(arguments map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      ExecuteServiceName,
			Arguments: arguments,
		},
	}
}

// decodeResult parses the text of result into a generic JSON object.
func decodeResult(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal([]byte(ResultText(result)), &body); err != nil {
		t.Fatalf("failed to parse result %q: %v", ResultText(result), err)
	}
	return body
}
