// Package executor is the Agent side of the protocol: it binds a TCP
// port, accepts one presenter connection at a time, and dispatches
// Execute messages through an ActionBackend.
package executor

import (
	"fmt"
	"log"
	"net"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/codemonkey-cli/codemonkey/internal/backend"
)

// RunLogger records one Execute dispatch for optional persistence
// (--log-runs); nil disables it.
type RunLogger interface {
	LogRun(connectionID string, ok bool, message string)
}

// Server is the Executor's accept loop.
type Server struct {
	Backend backend.ActionBackend
	Logger  RunLogger

	listener net.Listener
}

// NewServer constructs a Server around the given backend.
func NewServer(b backend.ActionBackend) *Server {
	return &Server{Backend: b}
}

// Listen binds the given port on all interfaces. Callers should follow
// with Serve.
func (s *Server) Listen(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("bind port %d: %w", port, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address; valid only after a successful Listen.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Close stops accepting new connections.
func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

// Serve accepts connections one at a time until the listener is closed.
// A second client arriving while one is active is refused per spec
// §4.7's busy-refusal rule.
func (s *Server) Serve() error {
	var active atomic.Bool
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		if !active.CompareAndSwap(false, true) {
			go refuseBusy(conn)
			continue
		}
		connID := uuid.NewString()
		log.Printf("[agent] connection %s from %s", connID, conn.RemoteAddr())
		go func() {
			s.handleConnection(connID, conn)
			log.Printf("[agent] connection %s closed", connID)
			active.Store(false)
		}()
	}
}
