// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"io"

	"github.com/scottopell/dogstatsd-msg-stats/protocol/dsdpb"
	"github.com/scottopell/dogstatsd-msg-stats/support/protostream"

	"github.com/pkg/errors"
)

// Writer writes a replay capture in the format produced by a dogstatsd agent.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w      io.Writer
	enc    protostream.Encoder
	closed bool
}

// NewWriter writes a header for version to w and returns a Writer that appends
// frames after it.
func NewWriter(w io.Writer, version int) (*Writer, error) {
	h := NewFileHeader(version)
	if !h.Supported() {
		return nil, errors.Wrapf(ErrUnsupportedReplayVersion, "version %d", version)
	}
	if err := h.Write(w); err != nil {
		return nil, errors.Wrap(err, "writing header")
	}
	return &Writer{w: w}, nil
}

// WriteMsg writes m as a single frame.
func (w *Writer) WriteMsg(m *dsdpb.UnixDogstatsdMsg) error {
	data := m.Marshal()
	if len(data) == 0 {
		return errors.New("empty message would be read as the closing marker")
	}
	return w.WriteFrame(data)
}

// WriteFrame writes data as a frame's contents, verbatim.
//
// data must not be empty.
func (w *Writer) WriteFrame(data []byte) error {
	if w.closed {
		return errors.New("writer is closed")
	}
	if len(data) == 0 {
		return errors.New("cannot write an empty frame")
	}
	_, err := w.enc.Write(w.w, data)
	return err
}

// Close writes the closing marker, followed by state as the capture trailer.
//
// If state is nil, an empty trailer is written, producing the all-zero
// sentinel. Close does not close the underlying io.Writer.
func (w *Writer) Close(state *dsdpb.TaggerState) error {
	if w.closed {
		return nil
	}
	w.closed = true

	if _, err := w.enc.Write(w.w, nil); err != nil {
		return errors.Wrap(err, "writing closing marker")
	}

	var trailer []byte
	if state != nil {
		trailer = state.Marshal()
	}
	if _, err := w.enc.Write(w.w, trailer); err != nil {
		return errors.Wrap(err, "writing trailer")
	}
	return nil
}
