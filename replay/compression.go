// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Compression is the compression applied to a capture file as a whole.
type Compression int32

const (
	// CompressionAuto detects compression from the file's leading bytes.
	CompressionAuto Compression = iota
	// CompressionNone is an uncompressed capture.
	CompressionNone
	// CompressionGzip is a gzip-compressed capture.
	CompressionGzip
	// CompressionSnappy is a capture compressed with the snappy framing format.
	CompressionSnappy
	// CompressionZstd is a zstd-compressed capture, as written by
	// "agent dogstatsd-capture --compressed".
	CompressionZstd
)

// Compression_name maps Compression values to their names.
var Compression_name = map[Compression]string{
	CompressionAuto:   "auto",
	CompressionNone:   "none",
	CompressionGzip:   "gzip",
	CompressionSnappy: "snappy",
	CompressionZstd:   "zstd",
}

// Compression_value maps Compression names to their values.
var Compression_value = map[string]Compression{
	"auto":   CompressionAuto,
	"none":   CompressionNone,
	"gzip":   CompressionGzip,
	"snappy": CompressionSnappy,
	"zstd":   CompressionZstd,
}

func (c Compression) String() string {
	if v, ok := Compression_name[c]; ok {
		return v
	}
	return "unknown"
}

var (
	gzipMagic   = []byte{0x1F, 0x8B}
	zstdMagic   = []byte{0x28, 0xB5, 0x2F, 0xFD}
	snappyMagic = []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// DetectCompression identifies the compression of data by its leading bytes.
//
// Data that matches no known compression, including an uncompressed capture,
// is reported as CompressionNone.
func DetectCompression(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(data, snappyMagic):
		return CompressionSnappy
	default:
		return CompressionNone
	}
}

// Decompress returns the decompressed form of data.
//
// For CompressionNone, data is returned as-is. CompressionAuto is resolved with
// DetectCompression first.
func Decompress(data []byte, c Compression) ([]byte, error) {
	if c == CompressionAuto {
		c = DetectCompression(data)
	}

	switch c {
	case CompressionNone:
		return data, nil

	case CompressionGzip:
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "creating gzip reader")
		}
		defer func() {
			_ = gz.Close()
		}()
		return readAllWrapped(gz, "gzip")

	case CompressionSnappy:
		return readAllWrapped(snappy.NewReader(bytes.NewReader(data)), "snappy")

	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, errors.Wrap(err, "creating zstd decoder")
		}
		defer dec.Close()

		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, errors.Wrap(err, "decompressing zstd")
		}
		return out, nil

	default:
		return nil, errors.Errorf("unknown compression: %s", c)
	}
}

func readAllWrapped(r io.Reader, name string) ([]byte, error) {
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decompressing %s", name)
	}
	return out, nil
}
