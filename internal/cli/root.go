package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is set via ldflags during build
	Commit = "unknown"

	// Global flags
	flagJSON    bool
	flagEnvFile string
)

// rootCmd serves MCP on stdio when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vanta-mcp",
	Short: "MCP adapter for the VANTA API",
	Long: `vanta-mcp exposes VANTA API services as Model Context Protocol tools.

Run without arguments it serves MCP on stdio, which is how MCP hosts
(Claude Desktop, etc.) start it. The remaining subcommands inspect and
exercise the tool catalog from a shell.`,
	Args:          cobra.NoArgs,
	RunE:          runMCP,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Load VANTA_* variables from a dotenv file")

	// Add all subcommands
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(versionCmd)
}

// GetVersion returns the version string
func GetVersion() string {
	if len(Commit) >= 7 && Commit != "unknown" {
		return fmt.Sprintf("%s (%s)", Version, Commit[:7])
	}
	return Version
}
