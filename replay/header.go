// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"bytes"
	"io"

	"github.com/scottopell/dogstatsd-msg-stats/support/fmtutil"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// Magic is the marker that begins every replay capture.
var Magic = [4]byte{0xD4, 0x74, 0xD0, 0x60}

const (
	// HeaderLen is the size of a FileHeader, in bytes.
	HeaderLen = 8

	// MinVersion is the oldest capture version that can be read.
	MinVersion = 1
	// CurrentVersion is the newest capture version that can be read, and the
	// version written by default.
	CurrentVersion = 3

	// versionMarker occupies the high nibble of the version byte.
	versionMarker = 0xF0
)

// FileHeader is the fixed-size prefix of a replay capture.
type FileHeader struct {
	Magic       [4]byte
	VersionByte uint8
	Reserved    [3]byte
}

// NewFileHeader returns the header that an agent writes for version.
func NewFileHeader(version int) FileHeader {
	return FileHeader{
		Magic:       Magic,
		VersionByte: versionMarker | uint8(version&0x0F),
		Reserved:    [3]byte{0xFF, 0x00, 0x00},
	}
}

// Version returns the capture version encoded in the header.
func (h *FileHeader) Version() int { return int(h.VersionByte & 0x0F) }

// Supported returns true if the header's version can be read.
func (h *FileHeader) Supported() bool {
	if h.VersionByte&0xF0 != versionMarker {
		return false
	}
	v := h.Version()
	return v >= MinVersion && v <= CurrentVersion
}

// Write writes the packed header to w.
func (h *FileHeader) Write(w io.Writer) error {
	return struc.Pack(w, h)
}

// readFileHeader reads and validates a FileHeader from the start of r.
func readFileHeader(r io.Reader, avail int) (FileHeader, error) {
	var h FileHeader

	if avail < len(Magic) {
		return h, errors.Wrapf(ErrNotAReplayFile, "buffer is only %d byte(s)", avail)
	}
	if avail < HeaderLen {
		// Read what we can, so that the marker can still be checked.
		var partial [HeaderLen]byte
		if _, err := io.ReadFull(r, partial[:avail]); err != nil {
			return h, errors.Wrap(err, "reading header")
		}
		if !bytes.Equal(partial[:len(Magic)], Magic[:]) {
			return h, errors.Wrapf(ErrNotAReplayFile, "header %s", fmtutil.HexSlice(partial[:avail]))
		}
		return h, errors.Wrapf(ErrUnsupportedReplayVersion, "header truncated after %d bytes", avail)
	}

	if err := struc.Unpack(r, &h); err != nil {
		return h, errors.Wrap(err, "unpacking header")
	}

	if h.Magic != Magic {
		return h, errors.Wrapf(ErrNotAReplayFile, "marker %s", fmtutil.HexSlice(h.Magic[:]))
	}
	if !h.Supported() {
		return h, errors.Wrapf(ErrUnsupportedReplayVersion, "version byte 0x%02X", h.VersionByte)
	}
	return h, nil
}
