// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replaydump

import (
	"github.com/scottopell/dogstatsd-msg-stats/replay"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var cfg Config

	BeforeEach(func() {
		cfg = DefaultConfig()
		cfg.Input = "/captures/dsd.bin"
	})

	It("derives the output path from the input", func() {
		Expect(cfg.OutputPath()).To(Equal("/captures/dsd.bin.txt"))

		cfg.Output = "/tmp/out"
		Expect(cfg.OutputPath()).To(Equal("/tmp/out"))
	})

	Context("Validate", func() {
		It("accepts the defaults", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("requires an input", func() {
			cfg.Input = ""
			Expect(cfg.Validate()).ToNot(Succeed())
		})

		It("refuses to overwrite the input", func() {
			cfg.Output = cfg.Input
			Expect(cfg.Validate()).ToNot(Succeed())
		})

		It("rejects an unknown log level", func() {
			cfg.LogLevel = "chatty"
			Expect(cfg.Validate()).ToNot(Succeed())
		})
	})

	Context("ApplyFileConfig", func() {
		fc := FileConfig{
			Output:      "/var/out.txt",
			Compression: "Snappy",
			LogLevel:    "debug",
			MetricsFile: "/var/lib/node_exporter/replaydump.prom",
		}

		It("applies every set value", func() {
			Expect(ApplyFileConfig(&cfg, fc, nil)).To(Succeed())
			Expect(cfg.Output).To(Equal("/var/out.txt"))
			Expect(cfg.Compression.Value()).To(Equal(replay.CompressionSnappy))
			Expect(cfg.LogLevel).To(Equal("debug"))
			Expect(cfg.MetricsFile).To(Equal("/var/lib/node_exporter/replaydump.prom"))
		})

		It("skips values whose flags were changed", func() {
			cfg.LogLevel = "error"
			changed := map[string]bool{"log-level": true, "compression": true}

			Expect(ApplyFileConfig(&cfg, fc, changed)).To(Succeed())
			Expect(cfg.LogLevel).To(Equal("error"))
			Expect(cfg.Compression.Value()).To(Equal(replay.CompressionAuto))
			Expect(cfg.Output).To(Equal("/var/out.txt"))
		})

		It("leaves defaults alone for empty values", func() {
			Expect(ApplyFileConfig(&cfg, FileConfig{}, nil)).To(Succeed())
			Expect(cfg).To(Equal(func() Config {
				c := DefaultConfig()
				c.Input = "/captures/dsd.bin"
				return c
			}()))
		})

		It("rejects an unknown compression", func() {
			Expect(ApplyFileConfig(&cfg, FileConfig{Compression: "brotli"}, nil)).ToNot(Succeed())
		})
	})
})
