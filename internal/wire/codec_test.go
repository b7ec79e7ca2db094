package wire

import (
	"bytes"
	"testing"

	"github.com/codemonkey-cli/codemonkey/internal/script"
)

func sampleMessages() []Message {
	return []Message{
		NewExecute([]script.Directive{
			script.Focus("Terminal"),
			script.Type("ls"),
			script.Run(),
		}, 40, 15),
		NewAckOk(),
		NewAckError("osascript: exit status 1"),
		NewPing(),
		NewPong(),
	}
}

// TestCodecRoundTrip checks the "Codec round-trip" invariant.
func TestCodecRoundTrip(t *testing.T) {
	for _, m := range sampleMessages() {
		encoded, err := Encode(m)
		if err != nil {
			t.Fatalf("Encode(%+v) error: %v", m, err)
		}
		got, consumed, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if consumed != len(encoded) {
			t.Fatalf("consumed %d, want %d", consumed, len(encoded))
		}
		if got.Tag != m.Tag {
			t.Fatalf("tag = %v, want %v", got.Tag, m.Tag)
		}
	}
}

// TestCodecSplitRead checks the "Codec framing under split reads"
// invariant: any non-empty two-way split yields NeedMore then the
// decoded message.
func TestCodecSplitRead(t *testing.T) {
	m := NewExecute([]script.Directive{script.Type("hello")}, 40, 15)
	encoded, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	for split := 1; split < len(encoded); split++ {
		first := encoded[:split]
		second := encoded[split:]

		_, _, err := Decode(first)
		if err != ErrNeedMore {
			t.Fatalf("split %d: first chunk decode err = %v, want ErrNeedMore", split, err)
		}

		full := append(append([]byte{}, first...), second...)
		got, consumed, err := Decode(full)
		if err != nil {
			t.Fatalf("split %d: full decode error: %v", split, err)
		}
		if consumed != len(full) {
			t.Fatalf("split %d: consumed %d, want %d", split, consumed, len(full))
		}
		if got.Tag != TagExecute {
			t.Fatalf("split %d: tag = %v", split, got.Tag)
		}
	}
}

func TestDecodeNeedMoreOnShortBuffer(t *testing.T) {
	if _, _, err := Decode(nil); err != ErrNeedMore {
		t.Fatalf("empty buffer: err = %v, want ErrNeedMore", err)
	}
	if _, _, err := Decode([]byte{0, 0}); err != ErrNeedMore {
		t.Fatalf("2-byte buffer: err = %v, want ErrNeedMore", err)
	}
}

func TestDecodeFrameTooLarge(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if _, _, err := Decode(buf); err == nil {
		t.Fatalf("expected error for oversized frame length")
	}
}

func TestDecoderStreamReadsAcrossWrites(t *testing.T) {
	m := NewExecute([]script.Directive{script.Type("hi")}, 40, 15)
	encoded, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	mid := len(encoded) / 2
	r := &chunkedReader{chunks: [][]byte{encoded[:mid], encoded[mid:]}}
	d := NewDecoder(r)

	got, err := d.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage error: %v", err)
	}
	if got.Tag != TagExecute {
		t.Fatalf("tag = %v, want Execute", got.Tag)
	}
}

// chunkedReader yields each chunk on a successive Read call, simulating
// a TCP stream delivered in pieces.
type chunkedReader struct {
	chunks [][]byte
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, bytes.ErrTooLarge
	}
	n := copy(p, c.chunks[0])
	c.chunks = c.chunks[1:]
	return n, nil
}
