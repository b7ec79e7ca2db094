package cmd

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/codemonkey-cli/codemonkey/internal/block"
	"github.com/codemonkey-cli/codemonkey/internal/dryrun"
	"github.com/codemonkey-cli/codemonkey/internal/notes"
	"github.com/codemonkey-cli/codemonkey/internal/script"
	"github.com/codemonkey-cli/codemonkey/internal/ui"
)

var checkSection string
var checkAgainst string
var checkNotes string

var checkCmd = &cobra.Command{
	Use:   "check <pattern>",
	Short: "Parse and group a script, reporting errors without connecting to an agent",
	Long: `check parses and groups one or more .cm scripts and reports the
first error encountered, if any. pattern may be a single file or a
doublestar glob ("demos/**/*.cm") to check several scripts at once.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkSection, "section", "", "only check blocks whose section matches this glob")
	checkCmd.Flags().StringVar(&checkAgainst, "against", "", "show a unified diff of this script's dry-run rendering against a previous one")
	checkCmd.Flags().StringVar(&checkNotes, "notes", "", "write an HTML rehearsal-notes export of the script's narration to this path")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths, err := expandScriptPattern(args[0])
	if err != nil {
		return withExitCode(ExitParseError, err)
	}
	if len(paths) == 0 {
		return withExitCode(ExitParseError, fmt.Errorf("no scripts matched %q", args[0]))
	}

	styles := ui.DefaultStyles()
	var firstErr error
	for _, path := range paths {
		if err := checkOne(path, styles); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return withExitCode(ExitParseError, firstErr)
	}
	return nil
}

func expandScriptPattern(pattern string) ([]string, error) {
	if !containsGlobMeta(pattern) {
		return []string{pattern}, nil
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
	}
	return matches, nil
}

func containsGlobMeta(s string) bool {
	for _, c := range s {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func checkOne(path string, styles *ui.Styles) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	s, err := script.ParseScript(string(text))
	if err != nil {
		return err
	}

	blocks := block.Group(s)
	blocks, err = block.FilterBySection(blocks, checkSection)
	if err != nil {
		return err
	}

	rendered := dryrun.Render(blocks)

	if checkAgainst != "" {
		prevText, err := os.ReadFile(checkAgainst)
		if err != nil {
			return fmt.Errorf("read --against baseline: %w", err)
		}
		prevScript, err := script.ParseScript(string(prevText))
		if err != nil {
			return fmt.Errorf("parse --against baseline: %w", err)
		}
		prevRendered := dryrun.Render(block.Group(prevScript))
		ui.PrintUnifiedDiff(path, prevRendered, rendered)
	} else {
		fmt.Print(rendered)
	}

	if checkNotes != "" {
		doc, err := notes.Render(blocks, path)
		if err != nil {
			return fmt.Errorf("render notes: %w", err)
		}
		if err := os.WriteFile(checkNotes, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write notes: %w", err)
		}
	}

	fmt.Println(styles.Success.Render(fmt.Sprintf("%s: ok (%d blocks)", path, len(blocks))))
	return nil
}
