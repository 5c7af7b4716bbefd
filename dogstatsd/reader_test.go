// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dogstatsd

import (
	"io"
	"testing"

	"github.com/scottopell/dogstatsd-msg-stats/replay"
	"github.com/scottopell/dogstatsd-msg-stats/replay/replaytest"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

// expectLine asserts that the next ReadMsg call returns line.
func expectLine(r *Reader, line string) {
	var s string
	n, err := r.ReadMsg(&s)
	ExpectWithOffset(1, err).ToNot(HaveOccurred())
	ExpectWithOffset(1, n).To(Equal(1))
	ExpectWithOffset(1, s).To(Equal(line))
}

// expectNoLine asserts that the next ReadMsg call returns no line.
func expectNoLine(r *Reader) {
	var s string
	n, err := r.ReadMsg(&s)
	ExpectWithOffset(1, err).ToNot(HaveOccurred())
	ExpectWithOffset(1, n).To(Equal(0))
	ExpectWithOffset(1, s).To(BeEmpty())
}

func mustNewReader(buf []byte) *Reader {
	r, err := NewReader(buf)
	ExpectWithOffset(1, err).ToNot(HaveOccurred())
	return r
}

var _ = Describe("Reader", func() {
	It("propagates construction errors unchanged", func() {
		_, err := NewReader([]byte("not a replay"))
		Expect(errors.Cause(err)).To(Equal(ErrNotAReplayFile))

		_, err = NewReader([]byte{0xD4, 0x74, 0xD0, 0x60, 0xF9, 0xFF, 0x00, 0x00})
		Expect(errors.Cause(err)).To(Equal(ErrUnsupportedReplayVersion))
	})

	Context("with captured fixtures", func() {
		It("reads two frames of one line each", func() {
			r := mustNewReader(replaytest.TwoMsgsOneLineEach)

			expectLine(r, replaytest.HashedDistributionLine)
			expectLine(r, replaytest.HashedDistributionLine)
			expectNoLine(r)
			Expect(r.Exhausted()).To(BeTrue())
		})

		It("reads one frame of two lines", func() {
			r := mustNewReader(replaytest.OneMsgTwoLines)

			expectLine(r, replaytest.TimestampedDistributionLine)
			expectLine(r, replaytest.GaugeLine)
			expectNoLine(r)
			Expect(r.Exhausted()).To(BeTrue())
		})

		It("reads one frame of three lines", func() {
			r := mustNewReader(replaytest.OneMsgThreeLines)

			for _, line := range replaytest.CounterLines {
				expectLine(r, line)
			}
			expectNoLine(r)
			Expect(r.Exhausted()).To(BeTrue())
		})
	})

	It("prepends the line to the destination string", func() {
		r := mustNewReader(replaytest.Capture("a:1|c\n"))

		s := "|tail"
		n, err := r.ReadMsg(&s)
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(1))
		Expect(s).To(Equal("a:1|c|tail"))
	})

	It("returns every line of a frame before reading the next frame", func() {
		r := mustNewReader(replaytest.Capture("a:1|c\nb:2|c\n", "c:3|c"))

		expectLine(r, "a:1|c")
		Expect(r.Frames().FramesRead()).To(Equal(int64(1)))
		expectLine(r, "b:2|c")
		Expect(r.Frames().FramesRead()).To(Equal(int64(1)))
		expectLine(r, "c:3|c")
		Expect(r.Frames().FramesRead()).To(Equal(int64(2)))
	})

	It("reports no line for an empty payload without ending the capture", func() {
		r := mustNewReader(replaytest.Capture("", "a:1|c"))

		expectNoLine(r)
		Expect(r.Exhausted()).To(BeFalse())

		expectLine(r, "a:1|c")
		expectNoLine(r)
		Expect(r.Exhausted()).To(BeTrue())
	})

	It("is not exhausted until the end of the capture has been observed", func() {
		r := mustNewReader(replaytest.Capture("a:1|c"))

		expectLine(r, "a:1|c")
		Expect(r.Exhausted()).To(BeFalse())
		expectNoLine(r)
		Expect(r.Exhausted()).To(BeTrue())

		By("continuing to report no line")
		expectNoLine(r)
	})

	It("fails on a payload that is not UTF-8, and keeps failing", func() {
		r := mustNewReader(replaytest.Capture("a:1|c", "b:\xff|c", "c:1|c"))

		expectLine(r, "a:1|c")

		var s string
		_, err := r.ReadMsg(&s)
		Expect(errors.Cause(err)).To(Equal(ErrInvalidUTF8Sequence))

		_, err = r.ReadMsg(&s)
		Expect(errors.Cause(err)).To(Equal(ErrInvalidUTF8Sequence))
		Expect(s).To(BeEmpty())
	})

	It("propagates malformed frames", func() {
		var b replaytest.Builder
		r := mustNewReader(b.Raw([]byte{0x0a}).Bytes())

		var s string
		_, err := r.ReadMsg(&s)
		Expect(errors.Cause(err)).To(Equal(replay.ErrMalformedFrame))
	})

	It("reads frames through a substituted codec", func() {
		var b replaytest.Builder
		frames, err := replay.NewReader(b.Raw([]byte("a:1|c\nb:2|c")).Raw([]byte("c:3|g\n")).Bytes())
		Expect(err).ToNot(HaveOccurred())

		// Frames hold bare payloads rather than UnixDogstatsdMsg.
		frames.Codec = replay.CodecFunc(func(data []byte, f *replay.Frame) error {
			f.Payload = data
			return nil
		})

		r := NewFrameReader(frames)
		Expect(r.Frames()).To(BeIdenticalTo(frames))

		expectLine(r, "a:1|c")
		expectLine(r, "b:2|c")
		expectLine(r, "c:3|g")
		expectNoLine(r)
		Expect(r.Exhausted()).To(BeTrue())
	})

	Context("ReadLine", func() {
		It("skips empty payloads and ends with io.EOF", func() {
			r := mustNewReader(replaytest.Capture("", "a:1|c", "", "", "b:2|c\n"))

			line, err := r.ReadLine()
			Expect(err).ToNot(HaveOccurred())
			Expect(line).To(Equal("a:1|c"))

			line, err = r.ReadLine()
			Expect(err).ToNot(HaveOccurred())
			Expect(line).To(Equal("b:2|c"))

			_, err = r.ReadLine()
			Expect(err).To(Equal(io.EOF))
		})

		It("returns io.EOF for a capture with no frames", func() {
			var b replaytest.Builder
			r := mustNewReader(b.Bytes())

			_, err := r.ReadLine()
			Expect(err).To(Equal(io.EOF))
		})
	})
})

var _ = Describe("splitLines", func() {
	DescribeTable("splits one record per line",
		func(text string, expected []string) {
			Expect(splitLines(text)).To(Equal(expected))
		},
		Entry("a single unterminated line", "a:1|c", []string{"a:1|c"}),
		Entry("a single terminated line", "a:1|c\n", []string{"a:1|c"}),
		Entry("two lines", "a:1|c\nb:2|c", []string{"a:1|c", "b:2|c"}),
		Entry("two terminated lines", "a:1|c\nb:2|c\n", []string{"a:1|c", "b:2|c"}),
		Entry("an embedded blank line", "a:1|c\n\nb:2|c\n", []string{"a:1|c", "", "b:2|c"}),
		Entry("only a newline", "\n", []string{""}),
		Entry("CRLF terminators", "a:1|c\r\nb:2|c\r\n", []string{"a:1|c", "b:2|c"}),
		Entry("a bare carriage return", "a:1|c\r", []string{"a:1|c\r"}),
	)
})

func TestDogStatsD(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Testing dogstatsd")
}
