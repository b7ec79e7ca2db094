// Package controller is the Presenter side of the protocol: it walks a
// grouped block list, dispatching Action blocks to a connected Executor
// and surfacing narration/pause waypoints locally.
package controller

import (
	"fmt"
	"net"
	"time"

	"github.com/codemonkey-cli/codemonkey/internal/block"
	"github.com/codemonkey-cli/codemonkey/internal/script"
	"github.com/codemonkey-cli/codemonkey/internal/wire"
)

// AckDeadline is the maximum time step() waits for an Execute's Ack
// before surfacing ConnectionLost.
const AckDeadline = 30 * time.Second

// StepKind tags the outcome of one Controller.Step call.
type StepKind int

const (
	StepExecuted StepKind = iota
	StepPaused
	StepNarrationOnly
	StepFinished
	StepAgentError
	StepConnectionLost
)

func (k StepKind) String() string {
	switch k {
	case StepExecuted:
		return "Executed"
	case StepPaused:
		return "Paused"
	case StepNarrationOnly:
		return "NarrationOnly"
	case StepFinished:
		return "Finished"
	case StepAgentError:
		return "AgentError"
	case StepConnectionLost:
		return "ConnectionLost"
	default:
		return "Unknown"
	}
}

// StepResult is the tagged outcome of a Step call.
type StepResult struct {
	Kind         StepKind
	PauseTimeout *int   // meaningful when Kind == StepPaused
	Message      string // meaningful when Kind == StepAgentError
}

// Controller owns the block cursor and the connection to the Executor.
type Controller struct {
	Blocks      []block.Block
	Current     int
	FrontMatter script.FrontMatter
	AgentAddr   string

	// AckDeadline bounds how long Step waits for an Execute's Ack
	// before surfacing ConnectionLost. Defaults to the package
	// AckDeadline constant; present overrides it from config.
	AckDeadline time.Duration

	conn net.Conn
}

// New constructs a Controller positioned at the start of blocks.
func New(blocks []block.Block, fm script.FrontMatter, agentAddr string) *Controller {
	return &Controller{Blocks: blocks, FrontMatter: fm, AgentAddr: agentAddr, AckDeadline: AckDeadline}
}

// Connect establishes the TCP connection to the Executor. Failure is
// recoverable; callers may retry.
func (c *Controller) Connect() error {
	conn, err := net.DialTimeout("tcp", c.AgentAddr, 10*time.Second)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", c.AgentAddr, err)
	}
	c.conn = conn
	return nil
}

// Connected reports whether a live connection is held.
func (c *Controller) Connected() bool {
	return c.conn != nil
}

// CurrentBlock returns the block at the cursor, or nil if finished.
func (c *Controller) CurrentBlock() *block.Block {
	if c.Current >= len(c.Blocks) {
		return nil
	}
	return &c.Blocks[c.Current]
}

// Progress reports (current, total).
func (c *Controller) Progress() (int, int) {
	return c.Current, len(c.Blocks)
}

// GoBack decrements the cursor, never below zero. It does not
// un-execute any already-dispatched action.
func (c *Controller) GoBack() {
	if c.Current > 0 {
		c.Current--
	}
}

// Step advances through one block.
func (c *Controller) Step() StepResult {
	if c.Current >= len(c.Blocks) {
		return StepResult{Kind: StepFinished}
	}

	b := c.Blocks[c.Current]
	switch b.Type {
	case block.TypeNarrationOnly:
		c.Current++
		return StepResult{Kind: StepNarrationOnly}

	case block.TypePause:
		c.Current++
		return StepResult{Kind: StepPaused, PauseTimeout: b.PauseTimeout}

	case block.TypeAction:
		return c.stepAction(b)

	default:
		c.Current++
		return StepResult{Kind: StepNarrationOnly}
	}
}

func (c *Controller) stepAction(b block.Block) StepResult {
	if c.conn == nil {
		return StepResult{Kind: StepConnectionLost}
	}

	msg := wire.NewExecute(b.Actions, c.FrontMatter.TypingSpeedMs, c.FrontMatter.TypingVarianceMs)
	if err := wire.WriteMessage(c.conn, msg); err != nil {
		c.dropConnection()
		return StepResult{Kind: StepConnectionLost}
	}

	type readResult struct {
		msg *wire.Message
		err error
	}
	resultCh := make(chan readResult, 1)
	go func() {
		d := wire.NewDecoder(c.conn)
		m, err := d.ReadMessage()
		resultCh <- readResult{m, err}
	}()

	select {
	case r := <-resultCh:
		if r.err != nil {
			c.dropConnection()
			return StepResult{Kind: StepConnectionLost}
		}
		if r.msg.Tag != wire.TagAck {
			c.dropConnection()
			return StepResult{Kind: StepConnectionLost}
		}
		if r.msg.Status == wire.StatusOk {
			c.Current++
			return StepResult{Kind: StepExecuted}
		}
		return StepResult{Kind: StepAgentError, Message: r.msg.Message}

	case <-time.After(c.AckDeadline):
		c.dropConnection()
		return StepResult{Kind: StepConnectionLost}
	}
}

func (c *Controller) dropConnection() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}
