package wire

import (
	"encoding/json"
	"testing"

	"github.com/codemonkey-cli/codemonkey/internal/script"
)

func TestMessageJSONShapeIsFlat(t *testing.T) {
	m := NewExecute([]script.Directive{script.Type("hi")}, 80, 0)
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if generic["type"] != "Execute" {
		t.Fatalf("type = %v, want Execute", generic["type"])
	}
	if generic["typing_speed"].(float64) != 80 {
		t.Fatalf("typing_speed = %v, want 80", generic["typing_speed"])
	}
}

// TestMessageKeyComboRoundTrip: a Key action
// survives the wire with its combo string intact.
func TestMessageKeyComboRoundTrip(t *testing.T) {
	m := NewExecute([]script.Directive{
		script.SlideGoToDirective(5),
		script.KeyDirective("cmd+shift+s"),
	}, 40, 15)
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var got Message
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(got.Actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(got.Actions))
	}
	if got.Actions[0].SlideGoToNumber != 5 {
		t.Fatalf("slide goto = %d, want 5", got.Actions[0].SlideGoToNumber)
	}
	if got.Actions[1].Key != "cmd+shift+s" {
		t.Fatalf("key combo = %q, want cmd+shift+s", got.Actions[1].Key)
	}
}

func TestAckErrorRoundTrip(t *testing.T) {
	m := NewAckError("missing application")
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var got Message
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.Status != StatusError || got.Message != "missing application" {
		t.Fatalf("got %+v", got)
	}
}

func TestUnmarshalUnknownTypeErrors(t *testing.T) {
	var m Message
	err := json.Unmarshal([]byte(`{"type":"Bogus"}`), &m)
	if err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestUnmarshalInboundAckDecodes(t *testing.T) {
	// The wire package itself decodes Ack successfully; it is the
	// executor's responsibility to reject an inbound Ack as a protocol
	// violation. This test only confirms decoding succeeds
	// so that rejection logic has a real Message to inspect.
	var m Message
	if err := json.Unmarshal([]byte(`{"type":"Ack","status":"Ok"}`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Tag != TagAck {
		t.Fatalf("tag = %v, want Ack", m.Tag)
	}
}
