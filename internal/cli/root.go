package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitTestFailures = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
)

var rootCmd = &cobra.Command{
	Use:   "ward",
	Short: "A modern test discovery and execution tool",
	Long:  "Ward discovers and runs tests, resolving its configuration from CLI flags, the [tool.ward] section of pyproject.toml, and built-in defaults.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		if exitCode == ExitSuccess {
			return ExitUsageError
		}
		return exitCode
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print ward version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "ward version %s\n", version)
	},
}
