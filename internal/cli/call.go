package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fuabioo/vanta-mcp/internal/errors"
	"github.com/Fuabioo/vanta-mcp/internal/tools"
)

var flagArgs string

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke a tool once and print its result",
	Long: `Runs a single tool call through the same dispatcher the MCP server uses
and prints the text content of the result.

Arguments are passed as a JSON object, for example:

  vanta-mcp call vanta_execute_service --args '{"service_id":"svc-42"}'`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVar(&flagArgs, "args", "", "Tool arguments as a JSON object")
}

func runCall(cmd *cobra.Command, args []string) error {
	name := args[0]

	arguments, err := parseArguments(name, flagArgs)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	registry, err := tools.Default(&tools.StubExecutor{
		Endpoint: cfg.ProjectURL(),
		Logger:   logger.Named("executor"),
	})
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	result, err := registry.Call(cmd.Context(), name, arguments)
	if err != nil {
		return err
	}

	fmt.Println(tools.ResultText(result))

	if result.IsError {
		return fmt.Errorf("tool %q returned an error result", name)
	}
	return nil
}

// parseArguments decodes the --args flag into an argument map.
// An empty value yields an empty map.
func parseArguments(tool, raw string) (map[string]any, error) {
	arguments := map[string]any{}
	if raw == "" {
		return arguments, nil
	}

	if err := json.Unmarshal([]byte(raw), &arguments); err != nil {
		return nil, errors.InvalidArguments(tool, err)
	}
	if arguments == nil {
		arguments = map[string]any{}
	}

	return arguments, nil
}
