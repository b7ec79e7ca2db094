package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codemonkey-cli/codemonkey/internal/backend"
	"github.com/codemonkey-cli/codemonkey/internal/executor"
	"github.com/codemonkey-cli/codemonkey/internal/rundebug"
	"github.com/codemonkey-cli/codemonkey/internal/script"
	"github.com/codemonkey-cli/codemonkey/internal/signal"
)

var agentPort int
var agentLogRuns bool

var agentCmd = &cobra.Command{
	Use:   "agent <script>",
	Short: "Start the Executor that enacts actions from a connected Controller",
	Long: `agent binds a TCP port and waits for a Controller to connect. The
script argument is parsed for validation only (spec's Controller, not the
agent, is authoritative for action content); a malformed script fails fast
before the port is bound.`,
	Args: cobra.ExactArgs(1),
	RunE: runAgent,
}

func init() {
	agentCmd.Flags().IntVar(&agentPort, "port", 0, "TCP port to bind (default: config agent_port)")
	agentCmd.Flags().BoolVar(&agentLogRuns, "log-runs", false, "record each Execute outcome to a local sqlite history")
	rootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	text, err := os.ReadFile(args[0])
	if err != nil {
		return withExitCode(ExitParseError, fmt.Errorf("read script: %w", err))
	}
	if _, err := script.ParseScript(string(text)); err != nil {
		return withExitCode(ExitParseError, fmt.Errorf("validate script: %w", err))
	}

	port := agentPort
	if port == 0 {
		port = cfg.AgentPort
	}

	ab := backend.NewAppleScriptBackend()
	srv := executor.NewServer(ab)

	logRuns := agentLogRuns || cfg.LogRuns
	if logRuns {
		store, err := rundebug.OpenDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: run history disabled: %v\n", err)
		} else {
			defer store.Close()
			srv.Logger = store
		}
	}

	if err := srv.Listen(port); err != nil {
		return withExitCode(ExitConnectError, err)
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext()
	defer stop()
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	fmt.Printf("agent listening on %s\n", srv.Addr())
	if err := srv.Serve(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return withExitCode(ExitProtocolError, err)
	}
	return nil
}
