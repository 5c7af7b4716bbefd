// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dogstatsd

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	linesRead = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsdreplay_lines_read",
		Help: "Count of metric lines reconstructed from replay payloads.",
	})

	emptyPayloads = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsdreplay_empty_payloads",
		Help: "Count of replay frames whose payload held no lines.",
	})

	invalidPayloads = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsdreplay_invalid_payloads",
		Help: "Count of replay payloads that were not valid UTF-8.",
	})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		linesRead,
		emptyPayloads,
		invalidPayloads,
	)
}
