// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	framesRead = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsdreplay_frames_read",
		Help: "Count of replay frames successfully decoded.",
	})

	framesTruncated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsdreplay_frames_truncated",
		Help: "Count of captures that ended in a truncated frame or stray bytes.",
	})

	framesMalformed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsdreplay_frames_malformed",
		Help: "Count of complete frames whose contents could not be decoded.",
	})

	payloadBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsdreplay_payload_bytes",
		Help: "Count of payload bytes extracted from replay frames.",
	})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		framesRead,
		framesTruncated,
		framesMalformed,
		payloadBytes,
	)
}
