package backend

import "github.com/codemonkey-cli/codemonkey/internal/script"

// Invocation records one Execute call a MockBackend observed.
type Invocation struct {
	Actions    []script.Directive
	SpeedMs    int
	VarianceMs int
}

// MockBackend is a recording ActionBackend substitute for Executor
// tests, in the mock-tool recording pattern: it
// records every call and lets a test script the response.
type MockBackend struct {
	Invocations []Invocation
	// ExecuteFunc, if set, is called instead of the default no-op
	// success behavior; it lets a test simulate a failing action.
	ExecuteFunc func(actions []script.Directive, speedMs, varianceMs int) error
}

// Execute implements ActionBackend.
func (m *MockBackend) Execute(actions []script.Directive, speedMs, varianceMs int) error {
	m.Invocations = append(m.Invocations, Invocation{Actions: actions, SpeedMs: speedMs, VarianceMs: varianceMs})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(actions, speedMs, varianceMs)
	}
	return nil
}
