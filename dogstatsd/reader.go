// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dogstatsd

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/scottopell/dogstatsd-msg-stats/replay"
	"github.com/scottopell/dogstatsd-msg-stats/support/fmtutil"
	"github.com/scottopell/dogstatsd-msg-stats/support/logging"

	"github.com/pkg/errors"
)

// Reader returns the metric lines held in a replay capture.
//
// Reader owns its decode state: a cursor into the capture, and the lines of
// the most recently read frame that have not been returned yet. It is not
// safe for concurrent use.
type Reader struct {
	// Logger is the logger instance to use. If nil, no logging will be
	// performed.
	Logger logging.L

	frames *replay.Reader

	// pending holds lines of the current frame that have not been returned.
	pending []string

	err error
}

// NewReader returns a Reader for the capture in buf.
//
// Construction errors from replay.NewReader are returned unchanged; their
// cause is ErrNotAReplayFile or ErrUnsupportedReplayVersion.
func NewReader(buf []byte) (*Reader, error) {
	frames, err := replay.NewReader(buf)
	if err != nil {
		return nil, err
	}
	return NewFrameReader(frames), nil
}

// NewFrameReader returns a Reader that pulls frames from frames.
//
// This can be used to read a capture with a custom replay.Codec. The Reader
// takes ownership of frames.
func NewFrameReader(frames *replay.Reader) *Reader {
	return &Reader{frames: frames}
}

// Frames returns the underlying frame reader.
func (r *Reader) Frames() *replay.Reader { return r.frames }

// Exhausted returns true when the capture has no more frames and every line of
// the last frame has been returned.
func (r *Reader) Exhausted() bool {
	return r.frames.Done() && len(r.pending) == 0
}

// ReadMsg reads the next metric line and prepends it to *s.
//
// ReadMsg returns 1 if a line was read. It returns 0 if no line was read by
// this call; that happens at the end of the capture, and also for a frame
// whose payload is empty. A return of 0 is not by itself the end of the
// capture: callers should check Exhausted, and call ReadMsg again if it is
// false.
//
// If a payload is not valid UTF-8, ReadMsg returns an error whose cause is
// ErrInvalidUTF8Sequence. Errors are terminal: every later call returns the
// same error.
func (r *Reader) ReadMsg(s *string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	for len(r.pending) == 0 {
		f, err := r.frames.Next()
		switch err {
		case nil:
		case io.EOF:
			return 0, nil
		default:
			r.err = err
			return 0, err
		}

		if !utf8.Valid(f.Payload) {
			invalidPayloads.Inc()
			logging.Must(r.Logger).Debugf("Frame at offset %d has an invalid payload:\n%s",
				f.Offset, fmtutil.Hex{Data: f.Payload, Limit: 64})
			r.err = errors.Wrapf(ErrInvalidUTF8Sequence, "frame at offset %d", f.Offset)
			return 0, r.err
		}

		if len(f.Payload) == 0 {
			emptyPayloads.Inc()
			return 0, nil
		}

		r.pending = splitLines(string(f.Payload))
	}

	line := r.pending[0]
	r.pending[0] = ""
	r.pending = r.pending[1:]

	*s = line + *s
	linesRead.Inc()
	return 1, nil
}

// ReadLine returns the next metric line.
//
// Unlike ReadMsg, ReadLine skips frames with empty payloads. At the end of the
// capture it returns io.EOF.
func (r *Reader) ReadLine() (string, error) {
	for {
		var line string
		n, err := r.ReadMsg(&line)
		switch {
		case err != nil:
			return "", err
		case n == 1:
			return line, nil
		case r.Exhausted():
			return "", io.EOF
		}
	}
}

// splitLines splits text into lines.
//
// Lines are terminated by "\n" or "\r\n"; the terminator is not included. The
// final line may be unterminated. A terminator at the very end of text does
// not produce an additional empty line, but blank lines within text are kept.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		if strings.HasSuffix(line, "\n") {
			line = line[:len(line)-1]
			line = strings.TrimSuffix(line, "\r")
		}
		lines[i] = line
	}
	return lines
}
