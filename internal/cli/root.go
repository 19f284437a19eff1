package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. A failing check run exits with the aggregated checker status
// verbatim, so any value the checker produces is possible; the constants
// below are the statuses prelint produces itself.
const (
	ExitSuccess      = 0
	ExitLintFailure  = 1
	ExitUsageError   = 2
	ExitGitError     = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "prelint",
	Short: "Lint changed files before they land",
	Long:  "Prelint lists changed files from git, runs a lint checker against each one concurrently, and exits with the aggregated status.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print prelint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "prelint version %s\n", version)
	},
}
