package executor

import (
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/codemonkey-cli/codemonkey/internal/wire"
)

// refuseBusy reads at most one message from a second connecting client,
// optionally acks it as busy, and closes.
func refuseBusy(conn net.Conn) {
	defer conn.Close()
	log.Printf("[agent] refusing second connection from %s: busy", conn.RemoteAddr())
	d := wire.NewDecoder(conn)
	if _, err := d.ReadMessage(); err == nil {
		_ = wire.WriteMessage(conn, wire.NewAckError("busy"))
	}
}

// handleConnection reads frames sequentially and dispatches them until
// the client disconnects or sends a protocol violation.
func (s *Server) handleConnection(connID string, conn net.Conn) {
	defer conn.Close()
	d := wire.NewDecoder(conn)

	for {
		msg, err := d.ReadMessage()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Printf("[agent] connection %s: read error: %v", connID, err)
			}
			return
		}

		switch msg.Tag {
		case wire.TagExecute:
			s.dispatchExecute(connID, conn, *msg)
		case wire.TagPing:
			if err := wire.WriteMessage(conn, wire.NewPong()); err != nil {
				log.Printf("[agent] connection %s: write pong failed: %v", connID, err)
				return
			}
		case wire.TagAck, wire.TagPong:
			log.Printf("[agent] connection %s: protocol violation: unexpected %s", connID, msg.Tag)
			return
		}
	}
}

// dispatchExecute runs one Execute's actions through the backend in
// order and replies with the resulting Ack.
func (s *Server) dispatchExecute(connID string, conn net.Conn, msg wire.Message) {
	err := s.Backend.Execute(msg.Actions, msg.TypingSpeedMs, msg.TypingVariance)

	var ack wire.Message
	if err != nil {
		message := fmt.Sprintf("action failed: %v", err)
		ack = wire.NewAckError(message)
		if s.Logger != nil {
			s.Logger.LogRun(connID, false, message)
		}
	} else {
		ack = wire.NewAckOk()
		if s.Logger != nil {
			s.Logger.LogRun(connID, true, "")
		}
	}

	if writeErr := wire.WriteMessage(conn, ack); writeErr != nil {
		log.Printf("[agent] connection %s: write ack failed: %v", connID, writeErr)
	}
}
