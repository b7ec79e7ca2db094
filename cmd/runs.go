package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codemonkey-cli/codemonkey/internal/rundebug"
)

var runsShowLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect the optional --log-runs history",
}

var runsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the most recent recorded Execute outcomes",
	RunE:  runRunsShow,
}

func init() {
	runsShowCmd.Flags().IntVar(&runsShowLimit, "limit", 20, "number of records to show")
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	store, err := rundebug.OpenDefault()
	if err != nil {
		return withExitCode(ExitParseError, fmt.Errorf("open run history: %w", err))
	}
	defer store.Close()

	records, err := store.Recent(runsShowLimit)
	if err != nil {
		return withExitCode(ExitParseError, err)
	}
	if len(records) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}
	for _, r := range records {
		status := "ok"
		if !r.Ok {
			status = "error: " + r.Message
		}
		fmt.Printf("%s  %s  %s\n", r.At.Format("2006-01-02 15:04:05"), r.ConnectionID, status)
	}
	return nil
}
