// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dogstatsd

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Dump writes every remaining line of r to w, each followed by a newline, in
// capture order. It returns the number of lines written.
//
// If r returns an error, Dump stops and returns it. Lines written before the
// error are flushed to w and left in place.
func Dump(r *Reader, w io.Writer) (count int64, err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = errors.Wrap(flushErr, "flushing output")
		}
	}()

	var line string
	for {
		n, err := r.ReadMsg(&line)
		if err != nil {
			return count, err
		}

		if n == 0 {
			if r.Exhausted() {
				return count, nil
			}
			continue
		}

		if _, err := bw.WriteString(line); err != nil {
			return count, errors.Wrap(err, "writing line")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return count, errors.Wrap(err, "writing line")
		}
		line = ""
		count++
	}
}
