package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Displays the vanta-mcp version, commit and the Go runtime it was built with.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	if flagJSON {
		return outputJSON(map[string]interface{}{
			"version": Version,
			"commit":  Commit,
			"go":      runtime.Version(),
		})
	}

	fmt.Printf("vanta-mcp %s (%s)\n", GetVersion(), runtime.Version())
	return nil
}
