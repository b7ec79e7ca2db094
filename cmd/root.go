// Package cmd wires the codemonkey CLI: agent, present, and check.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codemonkey-cli/codemonkey/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "codemonkey",
	Short: "Drive a live demo from a script",
	Long: `codemonkey turns a line-based .cm script into a rehearsed,
narrated desktop demo: an Executor (agent) on the demo machine runs
AppleScript-driven actions, and a Controller (present) walks a human
presenter through the script's narration and pauses.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeOf(err))
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using defaults\n", err)
		defaults := config.Defaults()
		return &defaults
	}
	return cfg
}
