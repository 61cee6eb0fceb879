package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fuabioo/vanta-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	Long: `Prints the tool catalog returned to MCP clients by tools/list.

With --json the descriptors are printed exactly as they appear on the wire.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	registry, err := tools.Default(&tools.StubExecutor{})
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	list := registry.List()

	if flagJSON {
		return outputJSON(map[string]interface{}{"tools": list})
	}

	for _, tool := range list {
		fmt.Printf("%s\n", tool.Name)
		if tool.Description != "" {
			fmt.Printf("  %s\n", tool.Description)
		}

		required := make(map[string]bool, len(tool.InputSchema.Required))
		for _, name := range tool.InputSchema.Required {
			required[name] = true
		}

		names := make([]string, 0, len(tool.InputSchema.Properties))
		for name := range tool.InputSchema.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			var flags []string
			if prop, ok := tool.InputSchema.Properties[name].(map[string]any); ok {
				if typ, ok := prop["type"].(string); ok {
					flags = append(flags, typ)
				}
			}
			if required[name] {
				flags = append(flags, "required")
			}
			fmt.Printf("    %s (%s)\n", name, strings.Join(flags, ", "))
		}
	}

	return nil
}
