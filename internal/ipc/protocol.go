// Package ipc carries tree updates from a producer to a consumer over a
// unix socket. Frames are length-prefixed JSON envelopes; the server folds
// updates into a consumer tree and routes action requests back to the
// connected producer.
package ipc

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// ProtocolVersion is bumped on incompatible envelope changes.
const ProtocolVersion = 1

// maxFrameSize bounds a single frame. Full trees serialize to large
// updates.
const maxFrameSize = 16 << 20

// Frame types.
const (
	TypeHello  = "hello"
	TypeUpdate = "update"
	TypeAction = "action"
	TypeAck    = "ack"
	TypeError  = "error"
)

// Frame is the wire envelope: a 4-byte big-endian length followed by this
// structure as JSON. Seq pairs a request with its ack or error; action
// frames carry the server's own sequence.
type Frame struct {
	Type    string          `json:"type"`
	Seq     uint64          `json:"seq"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Hello is the payload of the first frame on a connection.
type Hello struct {
	Name            string `json:"name"`
	ProtocolVersion int    `json:"protocol_version"`
}

// ErrorBody is the payload of an error frame.
type ErrorBody struct {
	Message string `json:"message"`
}

// WriteFrame writes one frame to w.
func WriteFrame(w io.Writer, frame Frame) error {
	body, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if len(body) > maxFrameSize {
		return fmt.Errorf("frame too large: %d bytes", len(body))
	}
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(body)))
	if _, err := w.Write(length[:]); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write frame body: %w", err)
	}
	return nil
}

// ReadFrame reads one frame from r. It returns io.EOF when the stream ends
// cleanly between frames.
func ReadFrame(r io.Reader) (Frame, error) {
	var length [4]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		if err == io.EOF {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("read frame length: %w", err)
	}
	size := binary.BigEndian.Uint32(length[:])
	if size == 0 {
		return Frame{}, fmt.Errorf("empty frame")
	}
	if size > maxFrameSize {
		return Frame{}, fmt.Errorf("frame too large: %d bytes", size)
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return Frame{}, fmt.Errorf("read frame body: %w", err)
	}
	var frame Frame
	if err := json.Unmarshal(body, &frame); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	return frame, nil
}

func newFrame(frameType string, seq uint64, payload any) (Frame, error) {
	frame := Frame{Type: frameType, Seq: seq}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return Frame{}, fmt.Errorf("encode %s payload: %w", frameType, err)
		}
		frame.Payload = body
	}
	return frame, nil
}
