// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package protostream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Encoder encodes a record stream to an io.Writer.
type Encoder struct {
	buf []byte
}

// Write writes rec to w, preceded by its size prefix. A nil or empty rec
// writes a bare zero-size prefix.
//
// Write returns the total number of bytes written, including the prefix.
func (e *Encoder) Write(w io.Writer, rec []byte) (int, error) {
	if uint64(len(rec)) > math.MaxUint32 {
		return 0, errors.Errorf("record too large (%d bytes)", len(rec))
	}

	e.buf = e.buf[:0]
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(len(rec)))
	e.buf = append(e.buf, rec...)

	// Write the full buffer to "w".
	return w.Write(e.buf)
}
