package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Fuabioo/vanta-mcp/internal/errors"
)

// Registry is the immutable tool catalog built at startup.
// Catalog order is the order tools were passed to NewRegistry.
type Registry struct {
	catalog  []mcp.Tool
	handlers map[string]Tool
}

// NewRegistry builds a registry from the given tools.
// Empty and duplicate names are rejected.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		catalog:  make([]mcp.Tool, 0, len(tools)),
		handlers: make(map[string]Tool, len(tools)),
	}

	for _, tool := range tools {
		def := tool.Definition()
		if def.Name == "" {
			return nil, fmt.Errorf("tool with empty name")
		}
		if _, exists := r.handlers[def.Name]; exists {
			return nil, fmt.Errorf("tool %q registered twice", def.Name)
		}
		r.catalog = append(r.catalog, def)
		r.handlers[def.Name] = tool
	}

	return r, nil
}

// Default builds the production registry around the given executor.
func Default(exec Executor) (*Registry, error) {
	return NewRegistry(NewExecuteService(exec))
}

// List returns the tool descriptors in catalog order.
func (r *Registry) List() []mcp.Tool {
	out := make([]mcp.Tool, len(r.catalog))
	copy(out, r.catalog)
	return out
}

// Names returns the tool names in catalog order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.catalog))
	for _, def := range r.catalog {
		names = append(names, def.Name)
	}
	return names
}

// Call runs the named tool against args.
// An unregistered name yields an UNKNOWN_TOOL error carrying that name.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	tool, ok := r.handlers[name]
	if !ok {
		return nil, errors.UnknownTool(name)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	return tool.Handle(ctx, request)
}
