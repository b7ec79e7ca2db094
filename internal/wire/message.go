// Package wire implements the length-prefixed framed protocol between
// Controller and Executor: tagged JSON messages over TCP.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/codemonkey-cli/codemonkey/internal/script"
)

// Tag identifies which Message variant a frame carries.
type Tag string

const (
	TagExecute Tag = "Execute"
	TagAck     Tag = "Ack"
	TagPing    Tag = "Ping"
	TagPong    Tag = "Pong"
)

// AckStatus is the result carried by an Ack message.
type AckStatus string

const (
	StatusOk    AckStatus = "Ok"
	StatusError AckStatus = "Error"
)

// Message is the tagged variant for everything that crosses the wire.
// Exactly the fields relevant to Tag are meaningful; construct values
// with the NewXxx helpers rather than populating the struct by hand.
type Message struct {
	Tag Tag

	// Execute fields.
	Actions        []script.Directive
	TypingSpeedMs  int
	TypingVariance int

	// Ack fields.
	Status  AckStatus
	Message string
}

// NewExecute builds an Execute message.
func NewExecute(actions []script.Directive, speedMs, varianceMs int) Message {
	return Message{Tag: TagExecute, Actions: actions, TypingSpeedMs: speedMs, TypingVariance: varianceMs}
}

// NewAckOk builds a successful Ack.
func NewAckOk() Message { return Message{Tag: TagAck, Status: StatusOk} }

// NewAckError builds a failed Ack carrying a diagnostic message.
func NewAckError(message string) Message {
	return Message{Tag: TagAck, Status: StatusError, Message: message}
}

// NewPing builds a Ping message.
func NewPing() Message { return Message{Tag: TagPing} }

// NewPong builds a Pong message.
func NewPong() Message { return Message{Tag: TagPong} }

// wireMessage is the flat on-wire JSON shape: a "type" discriminator
// alongside the variant's own fields, not nested under a
// variant key.
type wireMessage struct {
	Type string `json:"type"`

	Actions        []actionJSON `json:"actions,omitempty"`
	TypingSpeed    int          `json:"typing_speed,omitempty"`
	TypingVariance int          `json:"typing_variance,omitempty"`

	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON flattens Message into the wire shape for its Tag.
func (m Message) MarshalJSON() ([]byte, error) {
	w := wireMessage{Type: string(m.Tag)}
	switch m.Tag {
	case TagExecute:
		w.TypingSpeed = m.TypingSpeedMs
		w.TypingVariance = m.TypingVariance
		w.Actions = make([]actionJSON, len(m.Actions))
		for i, a := range m.Actions {
			aj, err := encodeAction(a)
			if err != nil {
				return nil, err
			}
			w.Actions[i] = aj
		}
	case TagAck:
		w.Status = string(m.Status)
		w.Message = m.Message
	case TagPing, TagPong:
		// no extra fields
	default:
		return nil, fmt.Errorf("unknown message tag %q", m.Tag)
	}
	return json.Marshal(w)
}

// UnmarshalJSON reconstructs a Message from the wire shape.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch Tag(w.Type) {
	case TagExecute:
		actions := make([]script.Directive, len(w.Actions))
		for i, aj := range w.Actions {
			d, err := decodeAction(aj)
			if err != nil {
				return err
			}
			actions[i] = d
		}
		*m = NewExecute(actions, w.TypingSpeed, w.TypingVariance)
	case TagAck:
		status := AckStatus(w.Status)
		if status != StatusOk && status != StatusError {
			return fmt.Errorf("unknown ack status %q", w.Status)
		}
		*m = Message{Tag: TagAck, Status: status, Message: w.Message}
	case TagPing:
		*m = NewPing()
	case TagPong:
		*m = NewPong()
	default:
		return fmt.Errorf("unknown message type %q", w.Type)
	}
	return nil
}
