// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package byteslicereader offers R, a slice-backed cursor with zero-copy
// read options.
//
// Standard io.Reader methods require that data be copied into a target Buffer.
// The zero-copy options, Peek and Next, return slices of R's underlying Buffer
// instead. Holding a reference to such a slice means that the Buffer must not
// be modified while that reference is in use. Replay buffers are immutable for
// the lifetime of a decode session, so this is always satisfied there.
package byteslicereader

import (
	"encoding/binary"
	"io"
)

// R is a forward-only cursor over Buffer.
//
// R can act like an io.Reader and io.ByteReader, allowing it to interface with
// other APIs at the expense of introducing data copying.
//
// R can be copied, creating a snapshot of its current state.
type R struct {
	// Buffer is the backing buffer for this reader.
	Buffer []byte

	// pos is the R's position within Buffer.
	pos int64
}

var _ interface {
	io.Reader
	io.ByteReader
} = (*R)(nil)

func (r *R) remainingSlice() []byte {
	if r.pos >= int64(len(r.Buffer)) {
		return nil
	}
	return r.Buffer[r.pos:]
}

// Remaining returns the number of bytes remaining in the reader, from the
// current position.
func (r *R) Remaining() int { return len(r.remainingSlice()) }

// Offset returns the current position within Buffer.
func (r *R) Offset() int64 { return r.pos }

// Read implements io.Reader.
//
// Note that using Read cause data to be copied.
func (r *R) Read(b []byte) (amt int, err error) {
	remaining := r.remainingSlice()
	if len(remaining) == 0 && len(b) > 0 {
		return 0, io.EOF
	}
	amt = copy(b, remaining)
	r.pos += int64(amt)
	return
}

// ReadByte implements io.ByteReader.
func (r *R) ReadByte() (b byte, err error) {
	if r.pos >= int64(len(r.Buffer)) {
		return 0, io.EOF
	}

	b, r.pos = r.Buffer[r.pos], r.pos+1
	return
}

// Peek returns the next n bytes in r without advancing it.
//
// If there are fewer than n bytes in r, Peek will return as many as possible.
func (r *R) Peek(n int) []byte {
	v := r.remainingSlice()
	if n < len(v) {
		v = v[:n]
	}
	return v
}

// Next returns the next n bytes in r, advancing r.
//
// If there are fewer than n bytes in r, Next will return as many bytes as it
// can and io.ErrUnexpectedEOF as an error. Next will never return an error if
// all requested bytes are returned.
func (r *R) Next(n int) (v []byte, err error) {
	v = r.remainingSlice()
	if n <= len(v) {
		v = v[:n]
	} else {
		err = io.ErrUnexpectedEOF
	}

	r.pos += int64(len(v))
	return
}

// Uint32LE reads a little-endian uint32 and advances r past it.
//
// If fewer than four bytes remain, r is not advanced and io.ErrUnexpectedEOF
// is returned.
func (r *R) Uint32LE() (uint32, error) {
	v := r.Peek(4)
	if len(v) < 4 {
		return 0, io.ErrUnexpectedEOF
	}
	r.pos += 4
	return binary.LittleEndian.Uint32(v), nil
}
