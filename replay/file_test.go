// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"

	. "github.com/scottopell/dogstatsd-msg-stats/replay"
	"github.com/scottopell/dogstatsd-msg-stats/replay/replaytest"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func compress(data []byte, c Compression) []byte {
	var buf bytes.Buffer
	switch c {
	case CompressionGzip:
		w := gzip.NewWriter(&buf)
		_, err := w.Write(data)
		Expect(err).ToNot(HaveOccurred())
		Expect(w.Close()).To(Succeed())

	case CompressionSnappy:
		w := snappy.NewBufferedWriter(&buf)
		_, err := w.Write(data)
		Expect(err).ToNot(HaveOccurred())
		Expect(w.Close()).To(Succeed())

	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		Expect(err).ToNot(HaveOccurred())
		defer enc.Close()
		return enc.EncodeAll(data, nil)

	default:
		return data
	}
	return buf.Bytes()
}

var _ = Describe("Compression", func() {
	capture := replaytest.OneMsgTwoLines

	DescribeTable("detects and removes compression",
		func(c Compression) {
			compressed := compress(capture, c)
			Expect(DetectCompression(compressed)).To(Equal(c))

			By("decompressing with auto-detection")
			out, err := Decompress(compressed, CompressionAuto)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal(capture))

			By("decompressing with an explicit compression")
			out, err = Decompress(compressed, c)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal(capture))
		},
		Entry("none", CompressionNone),
		Entry("gzip", CompressionGzip),
		Entry("snappy", CompressionSnappy),
		Entry("zstd", CompressionZstd),
	)

	It("fails on data that does not match an explicit compression", func() {
		_, err := Decompress(capture, CompressionGzip)
		Expect(err).To(HaveOccurred())
	})

	It("parses compression names", func() {
		c, err := ParseCompression("ZSTD")
		Expect(err).ToNot(HaveOccurred())
		Expect(c).To(Equal(CompressionZstd))

		_, err = ParseCompression("lz4")
		Expect(err).To(HaveOccurred())

		Expect(CompressionFlagValues()).To(Equal("auto, none, gzip, snappy, zstd"))
	})

	It("can be set through a flag", func() {
		var cf CompressionFlag
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.Var(&cf, "compression", "capture compression")

		Expect(fs.Parse([]string{"--compression", "snappy"})).To(Succeed())
		Expect(cf.Value()).To(Equal(CompressionSnappy))
		Expect(cf.String()).To(Equal("snappy"))

		Expect(fs.Parse([]string{"--compression", "bogus"})).ToNot(Succeed())
	})
})

var _ = Describe("OpenFile", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "replay_test")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	writeFile := func(name string, data []byte) string {
		path := filepath.Join(tempDir, name)
		Expect(os.WriteFile(path, data, 0644)).To(Succeed())
		return path
	}

	DescribeTable("loads a capture",
		func(c Compression) {
			path := writeFile("capture.bin", compress(replaytest.TwoMsgsOneLineEach, c))

			f, err := OpenFile(path, CompressionAuto)
			Expect(err).ToNot(HaveOccurred())
			defer func() {
				Expect(f.Close()).To(Succeed())
			}()

			Expect(f.Path).To(Equal(path))
			Expect(f.Compression).To(Equal(c))
			Expect(f.Bytes()).To(Equal(replaytest.TwoMsgsOneLineEach))
		},
		Entry("uncompressed", CompressionNone),
		Entry("gzip", CompressionGzip),
		Entry("zstd", CompressionZstd),
	)

	It("loads an empty file as an empty capture", func() {
		f, err := OpenFile(writeFile("empty.bin", nil), CompressionAuto)
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Bytes()).To(BeEmpty())
		Expect(f.Close()).To(Succeed())
	})

	It("fails for a missing file", func() {
		_, err := OpenFile(filepath.Join(tempDir, "missing.bin"), CompressionAuto)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
