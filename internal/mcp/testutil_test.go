package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Fuabioo/vanta-mcp/internal/tools"
)

const initializeRequest = `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test-host","version":"1.0.0"}}}`

// newTestServer creates a Server backed by the default registry.
func newTestServer(t *testing.T, logger *zap.Logger) *Server {
	t.Helper()

	registry, err := tools.Default(&tools.StubExecutor{})
	require.NoError(t, err)

	srv, err := NewServer(registry, logger)
	require.NoError(t, err)
	return srv
}

// roundTrip sends one JSON-RPC frame to srv and returns the response as generic JSON.
func roundTrip(t *testing.T, srv *Server, frame string) map[string]any {
	t.Helper()

	resp := srv.mcp.HandleMessage(context.Background(), json.RawMessage(frame))
	require.NotNil(t, resp, "no response for %s", frame)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

// callFrame builds a tools/call request frame.
func callFrame(t *testing.T, id int, name string, args map[string]any) string {
	t.Helper()

	frame := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "tools/call",
		"params": map[string]any{
			"name":      name,
			"arguments": args,
		},
	}
	data, err := json.Marshal(frame)
	require.NoError(t, err)
	return string(data)
}

// firstText extracts content[0].text from a tools/call response.
func firstText(t *testing.T, resp map[string]any) string {
	t.Helper()

	result, ok := resp["result"].(map[string]any)
	require.True(t, ok, "expected result, got %v", resp)

	content, ok := result["content"].([]any)
	require.True(t, ok, "expected content array, got %v", result)
	require.Len(t, content, 1)

	item := content[0].(map[string]any)
	require.Equal(t, "text", item["type"])
	return item["text"].(string)
}
