// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package replaytest contains captured replay fixtures and helpers for
// building synthetic replay captures in tests.
package replaytest

import (
	"bytes"
	"time"

	"github.com/scottopell/dogstatsd-msg-stats/protocol/dsdpb"
	"github.com/scottopell/dogstatsd-msg-stats/replay"
)

// DefaultStart is the capture time of the first frame written by a Builder.
var DefaultStart = time.Date(2023, time.August, 23, 21, 24, 59, 0, time.UTC)

// Builder assembles a synthetic capture frame by frame.
//
// Builder panics on error; it writes to memory and is meant for tests.
type Builder struct {
	// Version is the capture version to write. If zero, replay.CurrentVersion
	// is used. It must be set before the first frame is added.
	Version int

	buf    bytes.Buffer
	w      *replay.Writer
	frames int
}

func (b *Builder) writer() *replay.Writer {
	if b.w == nil {
		version := b.Version
		if version == 0 {
			version = replay.CurrentVersion
		}

		w, err := replay.NewWriter(&b.buf, version)
		if err != nil {
			panic(err)
		}
		b.w = w
	}
	return b.w
}

// Payload adds a frame carrying payload, as an agent would capture it.
func (b *Builder) Payload(payload string) *Builder {
	return b.Msg(dsdpb.UnixDogstatsdMsg{
		PayloadSize: int32(len(payload)),
		Payload:     []byte(payload),
	})
}

// Msg adds a frame carrying m. If m has no timestamp, one is assigned.
func (b *Builder) Msg(m dsdpb.UnixDogstatsdMsg) *Builder {
	if m.Timestamp == 0 {
		m.Timestamp = DefaultStart.Add(time.Duration(b.frames) * time.Millisecond).UnixNano()
	}
	if err := b.writer().WriteMsg(&m); err != nil {
		panic(err)
	}
	b.frames++
	return b
}

// Raw adds a frame whose contents are data, verbatim.
func (b *Builder) Raw(data []byte) *Builder {
	if err := b.writer().WriteFrame(data); err != nil {
		panic(err)
	}
	b.frames++
	return b
}

// Bytes closes the capture with the all-zero sentinel and returns it.
func (b *Builder) Bytes() []byte { return b.BytesWithState(nil) }

// BytesWithState closes the capture with state as its trailer and returns it.
func (b *Builder) BytesWithState(state *dsdpb.TaggerState) []byte {
	if err := b.writer().Close(state); err != nil {
		panic(err)
	}
	return b.buf.Bytes()
}

// Unterminated returns the capture without a closing marker, as left behind by
// an agent that was killed mid-capture.
func (b *Builder) Unterminated() []byte {
	b.writer()
	return append([]byte(nil), b.buf.Bytes()...)
}

// Capture returns a complete capture with one frame per payload.
func Capture(payloads ...string) []byte {
	var b Builder
	for _, p := range payloads {
		b.Payload(p)
	}
	return b.Bytes()
}
