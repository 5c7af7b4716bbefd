// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"time"

	"github.com/scottopell/dogstatsd-msg-stats/protocol/dsdpb"
)

// Frame is a single captured submission.
//
// Payload and Ancillary reference the Reader's buffer. They remain valid for
// as long as that buffer does.
type Frame struct {
	// Offset is the position of the frame's size prefix within the capture.
	Offset int64
	// Size is the declared size of the frame's contents.
	Size int

	// Timestamp is the time at which the submission was captured.
	Timestamp time.Time
	// Payload is the raw text submitted by the client. It may hold several
	// newline-separated metric lines.
	Payload []byte

	// PID is the originating process identifier, or 0 if it was not captured.
	PID int32
	// Ancillary is the captured out-of-band socket data, if any.
	Ancillary []byte
}

// Codec decodes the contents of a frame.
//
// DecodeFrame is given the frame's contents, not including the size prefix,
// and fills the content fields of f. Offset and Size are set by the Reader.
type Codec interface {
	DecodeFrame(data []byte, f *Frame) error
}

// CodecFunc is a function that implements Codec.
type CodecFunc func(data []byte, f *Frame) error

// DecodeFrame implements Codec.
func (fn CodecFunc) DecodeFrame(data []byte, f *Frame) error { return fn(data, f) }

// UnixMsgCodec is the Codec for captures recorded by a dogstatsd agent. Each
// frame holds one UnixDogstatsdMsg.
type UnixMsgCodec struct{}

var _ Codec = UnixMsgCodec{}

// DecodeFrame implements Codec.
func (UnixMsgCodec) DecodeFrame(data []byte, f *Frame) error {
	var m dsdpb.UnixDogstatsdMsg
	if err := m.Unmarshal(data); err != nil {
		return err
	}

	f.Timestamp = time.Unix(0, m.Timestamp)
	f.Payload = m.EffectivePayload()
	f.PID = m.PID
	f.Ancillary = m.Ancillary
	if m.AncillarySize > 0 && int(m.AncillarySize) < len(f.Ancillary) {
		f.Ancillary = f.Ancillary[:m.AncillarySize]
	}
	return nil
}
