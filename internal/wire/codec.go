package wire

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
)

// MaxFrameSize is the largest payload (excluding the 4-byte length
// prefix) a frame may carry. Larger frames are a protocol error (spec
// §4.6).
const MaxFrameSize = 16 * 1024 * 1024

// ErrNeedMore is returned by Decode when buf does not yet hold a full
// frame; the caller should read more bytes and retry.
var ErrNeedMore = errors.New("wire: need more bytes")

// ErrFrameTooLarge is returned when a frame's declared length exceeds
// MaxFrameSize.
var ErrFrameTooLarge = errors.New("wire: frame exceeds maximum size")

// Encode serializes m and prepends its 4-byte big-endian length.
func Encode(m Message) ([]byte, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	if len(payload) > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(payload))
	}
	buf := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(buf[:4], uint32(len(payload)))
	copy(buf[4:], payload)
	return buf, nil
}

// Decode attempts to parse one frame from the head of buf. It returns
// the message and the number of bytes consumed; the caller is
// responsible for shifting those bytes out of its buffer. If buf does
// not yet hold a complete frame, it returns ErrNeedMore. A frame whose
// declared length exceeds MaxFrameSize, or whose payload fails to
// parse, is a protocol error.
func Decode(buf []byte) (*Message, int, error) {
	if len(buf) < 4 {
		return nil, 0, ErrNeedMore
	}
	n := binary.BigEndian.Uint32(buf[:4])
	if n > MaxFrameSize {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, n)
	}
	total := 4 + int(n)
	if len(buf) < total {
		return nil, 0, ErrNeedMore
	}
	var m Message
	if err := json.Unmarshal(buf[4:total], &m); err != nil {
		return nil, 0, fmt.Errorf("decode payload: %w", err)
	}
	return &m, total, nil
}
