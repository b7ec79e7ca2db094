package backend

import "github.com/codemonkey-cli/codemonkey/internal/script"

// ActionBackend is the pluggable capability an Executor dispatches
// actions through. Production wires AppleScriptBackend; tests
// substitute a recording mock.
type ActionBackend interface {
	// Execute runs actions in list order, applying typewriter jitter
	// (speedMs/varianceMs) between Type characters. It stops at the
	// first failing action and returns an error describing it.
	Execute(actions []script.Directive, speedMs, varianceMs int) error
}
