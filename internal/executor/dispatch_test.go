package executor

import (
	"errors"
	"net"
	"testing"

	"github.com/codemonkey-cli/codemonkey/internal/backend"
	"github.com/codemonkey-cli/codemonkey/internal/script"
	"github.com/codemonkey-cli/codemonkey/internal/wire"
)

func TestDispatchExecuteOk(t *testing.T) {
	mock := &backend.MockBackend{}
	s := NewServer(mock)

	client, agent := net.Pipe()
	defer client.Close()
	go s.handleConnection("test-conn", agent)

	msg := wire.NewExecute([]script.Directive{script.Type("hi")}, 40, 15)
	if err := wire.WriteMessage(client, msg); err != nil {
		t.Fatalf("write error: %v", err)
	}

	d := wire.NewDecoder(client)
	got, err := d.ReadMessage()
	if err != nil {
		t.Fatalf("read ack error: %v", err)
	}
	if got.Tag != wire.TagAck || got.Status != wire.StatusOk {
		t.Fatalf("got %+v, want Ack{Ok}", got)
	}
	if len(mock.Invocations) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(mock.Invocations))
	}
}

func TestDispatchExecuteError(t *testing.T) {
	mock := &backend.MockBackend{
		ExecuteFunc: func(actions []script.Directive, speed, variance int) error {
			return errors.New("missing accessibility permission")
		},
	}
	s := NewServer(mock)

	client, agent := net.Pipe()
	defer client.Close()
	go s.handleConnection("test-conn", agent)

	msg := wire.NewExecute([]script.Directive{script.Focus("Terminal")}, 40, 15)
	if err := wire.WriteMessage(client, msg); err != nil {
		t.Fatalf("write error: %v", err)
	}

	d := wire.NewDecoder(client)
	got, err := d.ReadMessage()
	if err != nil {
		t.Fatalf("read ack error: %v", err)
	}
	if got.Tag != wire.TagAck || got.Status != wire.StatusError {
		t.Fatalf("got %+v, want Ack{Error}", got)
	}
}

func TestDispatchPingPong(t *testing.T) {
	mock := &backend.MockBackend{}
	s := NewServer(mock)

	client, agent := net.Pipe()
	defer client.Close()
	go s.handleConnection("test-conn", agent)

	if err := wire.WriteMessage(client, wire.NewPing()); err != nil {
		t.Fatalf("write error: %v", err)
	}
	d := wire.NewDecoder(client)
	got, err := d.ReadMessage()
	if err != nil {
		t.Fatalf("read pong error: %v", err)
	}
	if got.Tag != wire.TagPong {
		t.Fatalf("got %+v, want Pong", got)
	}
}

func TestHandleConnectionClosesOnInboundAck(t *testing.T) {
	mock := &backend.MockBackend{}
	s := NewServer(mock)

	client, agent := net.Pipe()
	done := make(chan struct{})
	go func() {
		s.handleConnection("test-conn", agent)
		close(done)
	}()

	if err := wire.WriteMessage(client, wire.NewAckOk()); err != nil {
		t.Fatalf("write error: %v", err)
	}
	<-done
	client.Close()
}
