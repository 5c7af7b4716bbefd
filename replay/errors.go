// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotAReplayFile is returned when a buffer does not begin with the
	// replay magic marker.
	ErrNotAReplayFile = errors.New("no dogstatsd replay marker found")

	// ErrUnsupportedReplayVersion is returned when a buffer has a replay marker
	// but a version that this package does not understand.
	ErrUnsupportedReplayVersion = errors.New("unsupported replay version")

	// ErrMalformedFrame is returned when a complete frame's contents cannot be
	// decoded by the reader's Codec.
	ErrMalformedFrame = errors.New("malformed replay frame")
)
