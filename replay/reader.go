// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"io"

	"github.com/scottopell/dogstatsd-msg-stats/protocol/dsdpb"
	"github.com/scottopell/dogstatsd-msg-stats/support/byteslicereader"
	"github.com/scottopell/dogstatsd-msg-stats/support/fmtutil"
	"github.com/scottopell/dogstatsd-msg-stats/support/logging"
	"github.com/scottopell/dogstatsd-msg-stats/support/protostream"

	"github.com/pkg/errors"
)

// maxDumpBytes is the number of bytes of a malformed frame included in logs.
const maxDumpBytes = 64

// Reader reads frames from an in-memory replay capture.
//
// Reader must be instantiated using NewReader. After instantiation, its
// exported fields can be modified to control its behavior, up until the first
// call to Next.
//
// Reader reads strictly forward and never revisits a frame. It is not safe for
// concurrent use.
type Reader struct {
	// Codec decodes each frame's contents. If nil, UnixMsgCodec is used.
	Codec Codec

	// Logger is the logger instance to use. If nil, no logging will be
	// performed.
	Logger logging.L

	header FileHeader

	// r is the cursor into the capture buffer.
	r   byteslicereader.R
	dec protostream.Decoder

	// state is the tagger state read from the capture trailer, if any.
	state *dsdpb.TaggerState

	frames int64
	done   bool
	err    error
}

// NewReader validates buf's header and returns a Reader positioned at the
// first frame.
//
// If buf does not begin with the replay marker, the returned error's cause is
// ErrNotAReplayFile. If the marker is present but the version is not
// understood, its cause is ErrUnsupportedReplayVersion.
//
// buf must not be modified while the Reader or any Frame it returned is in use.
func NewReader(buf []byte) (*Reader, error) {
	rr := Reader{
		r: byteslicereader.R{Buffer: buf},
	}

	h, err := readFileHeader(&rr.r, len(buf))
	if err != nil {
		return nil, err
	}
	rr.header = h
	return &rr, nil
}

// Header returns the capture's header.
func (rr *Reader) Header() FileHeader { return rr.header }

// Offset returns the position of the next unread byte in the capture.
func (rr *Reader) Offset() int64 { return rr.r.Offset() }

// FramesRead returns the number of frames that Next has returned.
func (rr *Reader) FramesRead() int64 { return rr.frames }

// Done returns true once Next has reached the end of the capture.
func (rr *Reader) Done() bool { return rr.done }

// TaggerState returns the tagger state that followed the closing marker.
//
// TaggerState is nil until Next has returned io.EOF, and remains nil if the
// capture ended in the all-zero sentinel or was truncated.
func (rr *Reader) TaggerState() *dsdpb.TaggerState { return rr.state }

// Next returns the next frame in the capture.
//
// At the end of the capture, Next returns io.EOF. The end is reached at the
// closing marker, or at the first frame that is cut short; captures truncated
// by an abrupt shutdown are read up to their last complete frame.
//
// If a complete frame cannot be decoded, Next returns an error whose cause is
// ErrMalformedFrame. The error is terminal: every later call returns it.
func (rr *Reader) Next() (*Frame, error) {
	switch {
	case rr.err != nil:
		return nil, rr.err
	case rr.done:
		return nil, io.EOF
	}

	logger := logging.Must(rr.Logger)
	offset := rr.r.Offset()

	data, err := rr.dec.Next(&rr.r)
	switch err {
	case nil:
	case io.EOF:
		if n := rr.r.Remaining(); n > 0 {
			framesTruncated.Inc()
			logger.Debugf("Ignoring %d trailing byte(s) at offset %d.", n, offset)
		} else {
			logger.Debugf("Capture ended at offset %d without a closing marker.", offset)
		}
		return rr.finish()
	case protostream.ErrShortRecord:
		framesTruncated.Inc()
		logger.Warnf("Frame at offset %d is truncated (declared %d bytes, %d available); ending capture.",
			offset, rr.dec.LastSize(), rr.r.Remaining())
		return rr.finish()
	default:
		return nil, err
	}

	if len(data) == 0 {
		// Closing marker.
		rr.readTrailer()
		return rr.finish()
	}

	f := Frame{
		Offset: offset,
		Size:   len(data),
	}
	if err := rr.codec().DecodeFrame(data, &f); err != nil {
		framesMalformed.Inc()
		logger.Debugf("Malformed frame at offset %d:\n%s", offset, fmtutil.Hex{Data: data, Limit: maxDumpBytes})
		rr.err = errors.Wrapf(ErrMalformedFrame, "frame at offset %d: %s", offset, err)
		return nil, rr.err
	}

	rr.frames++
	framesRead.Inc()
	payloadBytes.Add(float64(len(f.Payload)))
	return &f, nil
}

func (rr *Reader) codec() Codec {
	if rr.Codec != nil {
		return rr.Codec
	}
	return UnixMsgCodec{}
}

func (rr *Reader) finish() (*Frame, error) {
	rr.done = true
	return nil, io.EOF
}

// readTrailer reads the record following the closing marker.
//
// A zero-size trailer is the sentinel. A missing or undecodable trailer is
// logged and otherwise ignored: it carries no frames.
func (rr *Reader) readTrailer() {
	logger := logging.Must(rr.Logger)
	offset := rr.r.Offset()

	trailer, err := rr.dec.Next(&rr.r)
	switch {
	case err != nil:
		logger.Debugf("No complete trailer after closing marker at offset %d: %s", offset, err)
		return
	case len(trailer) == 0:
		return
	}

	var st dsdpb.TaggerState
	if err := st.Unmarshal(trailer); err != nil {
		logger.Warnf("Could not decode tagger state at offset %d: %s", offset, err)
		return
	}
	logger.Debugf("Read tagger state: %d entities, %d pid mappings.", st.Entities, len(st.PIDMap))
	rr.state = &st
}

