// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dogstatsd

import (
	"github.com/scottopell/dogstatsd-msg-stats/replay"

	"github.com/pkg/errors"
)

var (
	// ErrNotAReplayFile is replay.ErrNotAReplayFile.
	ErrNotAReplayFile = replay.ErrNotAReplayFile

	// ErrUnsupportedReplayVersion is replay.ErrUnsupportedReplayVersion.
	ErrUnsupportedReplayVersion = replay.ErrUnsupportedReplayVersion

	// ErrInvalidUTF8Sequence is returned when a frame's payload is not valid
	// UTF-8 text.
	ErrInvalidUTF8Sequence = errors.New("invalid UTF-8 sequence found in payload of msg")
)
