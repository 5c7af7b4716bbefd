// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package protostream reads and writes streams of length-prefixed records.
//
// Each record is preceded by its size, encoded as a little-endian uint32. The
// record body is opaque to this package; in a replay file it holds a single
// encoded protobuf message.
package protostream

import (
	"io"

	"github.com/scottopell/dogstatsd-msg-stats/support/byteslicereader"

	"github.com/pkg/errors"
)

// SizePrefixLen is the size, in bytes, of a record's length prefix.
const SizePrefixLen = 4

// ErrShortRecord is returned by Decoder when a record's declared size exceeds
// the data remaining in the stream.
var ErrShortRecord = errors.New("record is shorter than its size prefix")

// Decoder decodes a series of records from an in-memory stream.
//
// Decoder never copies: returned records are slices of the reader's Buffer.
type Decoder struct {
	// lastSize is the declared size of the most recently read prefix.
	lastSize uint32
}

// Next reads the next record from r.
//
// If fewer than SizePrefixLen bytes remain, Next returns io.EOF and does not
// advance r. If the size prefix could be read but the record body is
// incomplete, Next returns ErrShortRecord; r is left positioned after the
// prefix.
//
// A zero-size record is returned as an empty, non-nil slice.
func (d *Decoder) Next(r *byteslicereader.R) ([]byte, error) {
	size, err := r.Uint32LE()
	if err != nil {
		return nil, io.EOF
	}
	d.lastSize = size

	if uint64(size) > uint64(r.Remaining()) {
		return nil, ErrShortRecord
	}

	rec, err := r.Next(int(size))
	if err != nil {
		// Guarded by the Remaining check above.
		panic("record body unavailable after size check")
	}
	if rec == nil {
		rec = []byte{}
	}
	return rec, nil
}

// LastSize returns the declared size of the most recently read size prefix.
func (d *Decoder) LastSize() uint32 { return d.lastSize }
