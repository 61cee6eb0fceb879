package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Fuabioo/vanta-mcp/internal/errors"
)

// ResultText returns the text of the first content item, or "" if there is none.
func ResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := mcp.AsTextContent(result.Content[0]); ok {
		return textContent.Text
	}
	return ""
}

// mcpErrorResult converts an error to an MCP error result.
func mcpErrorResult(err error) *mcp.CallToolResult {
	code := errors.Code(err)
	if code == "" {
		code = errors.CodeInternal
	}

	return errorResult(code, err.Error())
}

// errorResult creates an MCP error result with a JSON body.
func errorResult(code, message string) *mcp.CallToolResult {
	errorData := map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	}

	var result *mcp.CallToolResult
	jsonBytes, err := json.Marshal(errorData)
	if err != nil {
		result = mcp.NewToolResultText(fmt.Sprintf("Error: %s - %s", code, message))
	} else {
		result = mcp.NewToolResultText(string(jsonBytes))
	}
	result.IsError = true

	return result
}

// jsonResult creates an MCP success result from a JSON-serializable value.
func jsonResult(data any) *mcp.CallToolResult {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return mcpErrorResult(errors.Internal("failed to marshal response", err))
	}

	return mcp.NewToolResultText(string(jsonBytes))
}
