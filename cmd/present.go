package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codemonkey-cli/codemonkey/internal/block"
	"github.com/codemonkey-cli/codemonkey/internal/config"
	"github.com/codemonkey-cli/codemonkey/internal/controller"
	"github.com/codemonkey-cli/codemonkey/internal/dryrun"
	"github.com/codemonkey-cli/codemonkey/internal/script"
	"github.com/codemonkey-cli/codemonkey/internal/tui"
	"github.com/codemonkey-cli/codemonkey/internal/ui"
)

var presentAgentAddr string
var presentDryRun bool
var presentSection string

var presentCmd = &cobra.Command{
	Use:   "present <script>",
	Short: "Walk through a script as the Controller, driving a connected agent",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresent,
}

func init() {
	presentCmd.Flags().StringVar(&presentAgentAddr, "agent", "", "executor address, HOST:PORT (required unless --dry-run)")
	presentCmd.Flags().BoolVar(&presentDryRun, "dry-run", false, "print the block plan instead of connecting to an agent")
	presentCmd.Flags().StringVar(&presentSection, "section", "", "only present blocks whose section matches this glob")
	rootCmd.AddCommand(presentCmd)
}

// resolveTheme starts from the named preset (if configured) and layers
// any per-color keys from cfg.Theme on top of it.
func resolveTheme(cfg *config.Config) ui.ThemeConfig {
	base := ui.ThemeConfig{}
	if cfg.ThemeName != "" {
		if preset := ui.GetPresetTheme(cfg.ThemeName); preset != nil {
			base = preset.Config
		}
	}

	override := func(field *string, v string) {
		if v != "" {
			*field = v
		}
	}
	override(&base.Primary, cfg.Theme.Primary)
	override(&base.Secondary, cfg.Theme.Secondary)
	override(&base.Success, cfg.Theme.Success)
	override(&base.Error, cfg.Theme.Error)
	override(&base.Warning, cfg.Theme.Warning)
	override(&base.Muted, cfg.Theme.Muted)
	override(&base.Text, cfg.Theme.Text)
	override(&base.Spinner, cfg.Theme.Spinner)
	return base
}

func runPresent(cmd *cobra.Command, args []string) error {
	if !presentDryRun && presentAgentAddr == "" {
		return withExitCode(ExitParseError, fmt.Errorf("--agent is required unless --dry-run is set"))
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		return withExitCode(ExitParseError, fmt.Errorf("read script: %w", err))
	}
	s, err := script.ParseScript(string(text))
	if err != nil {
		return withExitCode(ExitParseError, fmt.Errorf("parse script: %w", err))
	}

	blocks := block.Group(s)
	blocks, err = block.FilterBySection(blocks, presentSection)
	if err != nil {
		return withExitCode(ExitParseError, err)
	}

	if presentDryRun {
		fmt.Print(dryrun.Render(blocks))
		return nil
	}

	cfg := loadConfig()
	ui.InitTheme(resolveTheme(cfg))

	ctrl := controller.New(blocks, s.FrontMatter, presentAgentAddr)
	if cfg.AckTimeoutSeconds > 0 {
		ctrl.AckDeadline = time.Duration(cfg.AckTimeoutSeconds) * time.Second
	}
	model := tui.New(ctrl)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return withExitCode(ExitProtocolError, fmt.Errorf("tui: %w", err))
	}
	return nil
}
