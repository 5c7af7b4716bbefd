// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dsdpb

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/pkg/errors"
)

// UnixDogstatsdMsg field numbers.
const (
	fieldTimestamp     protowire.Number = 1
	fieldPayloadSize   protowire.Number = 2
	fieldPayload       protowire.Number = 3
	fieldPID           protowire.Number = 4
	fieldAncillarySize protowire.Number = 5
	fieldAncillary     protowire.Number = 6
)

// UnixDogstatsdMsg is a single captured dogstatsd submission.
type UnixDogstatsdMsg struct {
	// Timestamp is the capture time, in nanoseconds since the Unix epoch.
	Timestamp int64
	// PayloadSize is the number of meaningful bytes in Payload.
	PayloadSize int32
	// Payload is the raw text submitted by the client.
	//
	// After Unmarshal, Payload references the input buffer.
	Payload []byte
	// PID is the originating process identifier, if it was captured.
	PID int32
	// AncillarySize is the number of meaningful bytes in Ancillary.
	AncillarySize int32
	// Ancillary holds the socket's out-of-band credentials data.
	Ancillary []byte
}

// Reset clears all fields of m.
func (m *UnixDogstatsdMsg) Reset() { *m = UnixDogstatsdMsg{} }

// EffectivePayload returns Payload, capped at PayloadSize when PayloadSize is
// positive and smaller than the captured bytes.
func (m *UnixDogstatsdMsg) EffectivePayload() []byte {
	if m.PayloadSize > 0 && int(m.PayloadSize) < len(m.Payload) {
		return m.Payload[:m.PayloadSize]
	}
	return m.Payload
}

// Unmarshal decodes b into m. m is reset first.
//
// Payload and Ancillary alias b; b must outlive m.
func (m *UnixDogstatsdMsg) Unmarshal(b []byte) error {
	m.Reset()

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "reading tag")
		}
		b = b[n:]

		switch num {
		case fieldTimestamp, fieldPayloadSize, fieldPID, fieldAncillarySize:
			if typ != protowire.VarintType {
				return errors.Errorf("field %d: unexpected wire type %d", num, typ)
			}
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "field %d", num)
			}
			b = b[n:]

			switch num {
			case fieldTimestamp:
				m.Timestamp = int64(v)
			case fieldPayloadSize:
				m.PayloadSize = int32(v)
			case fieldPID:
				m.PID = int32(v)
			case fieldAncillarySize:
				m.AncillarySize = int32(v)
			}

		case fieldPayload, fieldAncillary:
			if typ != protowire.BytesType {
				return errors.Errorf("field %d: unexpected wire type %d", num, typ)
			}
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "field %d", num)
			}
			b = b[n:]

			if num == fieldPayload {
				m.Payload = v
			} else {
				m.Ancillary = v
			}

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "skipping field %d", num)
			}
			b = b[n:]
		}
	}
	return nil
}

// Marshal encodes m using proto3 rules: zero-valued fields are omitted.
func (m *UnixDogstatsdMsg) Marshal() []byte {
	var b []byte
	appendVarint := func(num protowire.Number, v uint64) {
		if v == 0 {
			return
		}
		b = protowire.AppendTag(b, num, protowire.VarintType)
		b = protowire.AppendVarint(b, v)
	}
	appendBytes := func(num protowire.Number, v []byte) {
		if len(v) == 0 {
			return
		}
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, v)
	}

	appendVarint(fieldTimestamp, uint64(m.Timestamp))
	appendVarint(fieldPayloadSize, uint64(int64(m.PayloadSize)))
	appendBytes(fieldPayload, m.Payload)
	appendVarint(fieldPID, uint64(int64(m.PID)))
	appendVarint(fieldAncillarySize, uint64(int64(m.AncillarySize)))
	appendBytes(fieldAncillary, m.Ancillary)
	return b
}
