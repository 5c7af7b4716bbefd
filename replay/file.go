// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// File is a replay capture loaded into memory.
//
// An uncompressed capture is memory-mapped read-only; a compressed capture is
// decompressed into a heap buffer and its file released immediately.
type File struct {
	// Path is the path that the capture was loaded from.
	Path string
	// Compression is the compression that was removed from the capture.
	Compression Compression

	data []byte
	mm   mmap.MMap
	fd   *os.File
}

// OpenFile loads the capture at path.
//
// If c is CompressionAuto, the capture's compression is detected from its
// contents. The returned File must be closed when its data is no longer
// referenced, including by any Reader or Frame built on it.
func OpenFile(path string, c Compression) (f *File, err error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if fd != nil {
			_ = fd.Close()
		}
	}()

	st, err := fd.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat")
	}
	if st.Size() == 0 {
		// Empty files cannot be mapped.
		return &File{Path: path, Compression: CompressionNone}, nil
	}

	mm, err := mmap.Map(fd, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping %q", path)
	}

	if c == CompressionAuto {
		c = DetectCompression(mm)
	}
	if c == CompressionNone {
		f = &File{
			Path:        path,
			Compression: c,
			data:        mm,
			mm:          mm,
			fd:          fd,
		}
		fd = nil // Owned by f.
		return f, nil
	}

	defer func() {
		if unmapErr := mm.Unmap(); err == nil && unmapErr != nil {
			err = errors.Wrap(unmapErr, "unmapping")
		}
	}()

	data, err := Decompress(mm, c)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", path)
	}
	return &File{
		Path:        path,
		Compression: c,
		data:        data,
	}, nil
}

// Bytes returns the capture's uncompressed contents.
//
// Bytes must not be modified, and must not be used after Close.
func (f *File) Bytes() []byte { return f.data }

// Close releases the capture's resources.
func (f *File) Close() error {
	f.data = nil

	var err error
	if f.mm != nil {
		err = f.mm.Unmap()
		f.mm = nil
	}
	if f.fd != nil {
		if closeErr := f.fd.Close(); err == nil {
			err = closeErr
		}
		f.fd = nil
	}
	return err
}
