// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package dogstatsd

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/scottopell/dogstatsd-msg-stats/replay/replaytest"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

var _ = Describe("Dump", func() {
	It("writes the lines of every frame in order", func() {
		var buf bytes.Buffer
		count, err := Dump(mustNewReader(replaytest.OneMsgTwoLines), &buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(count).To(Equal(int64(2)))
		Expect(buf.String()).To(Equal(
			replaytest.TimestampedDistributionLine + "\n" + replaytest.GaugeLine + "\n"))
	})

	It("continues past frames with empty payloads", func() {
		var buf bytes.Buffer
		count, err := Dump(mustNewReader(replaytest.Capture("a:1|c", "", "", "b:2|c\nc:3|c\n")), &buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(count).To(Equal(int64(3)))
		Expect(buf.String()).To(Equal("a:1|c\nb:2|c\nc:3|c\n"))
	})

	It("writes nothing for a capture with no frames", func() {
		var b replaytest.Builder

		var buf bytes.Buffer
		count, err := Dump(mustNewReader(b.Bytes()), &buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(count).To(BeZero())
		Expect(buf.Len()).To(BeZero())
	})

	It("produces output that reads back as the decoded lines", func() {
		payloads := []string{
			replaytest.HashedDistributionLine + "\n",
			strings.Join(replaytest.CounterLines, "\n"),
			"",
			"x:1|c\n\ny:2|c\n",
		}

		By("collecting the decoded lines")
		var decoded []string
		r := mustNewReader(replaytest.Capture(payloads...))
		for {
			line, err := r.ReadLine()
			if err != nil {
				break
			}
			decoded = append(decoded, line)
		}
		Expect(decoded).To(HaveLen(7))

		By("dumping and reading back")
		var buf bytes.Buffer
		_, err := Dump(mustNewReader(replaytest.Capture(payloads...)), &buf)
		Expect(err).ToNot(HaveOccurred())

		var readBack []string
		sc := bufio.NewScanner(&buf)
		for sc.Scan() {
			readBack = append(readBack, sc.Text())
		}
		Expect(sc.Err()).ToNot(HaveOccurred())
		Expect(readBack).To(Equal(decoded))
	})

	It("keeps the output written before a decode error", func() {
		var buf bytes.Buffer
		count, err := Dump(mustNewReader(replaytest.Capture("a:1|c\nb:2|c", "\xc3\x28", "c:3|c")), &buf)
		Expect(errors.Cause(err)).To(Equal(ErrInvalidUTF8Sequence))
		Expect(count).To(Equal(int64(2)))
		Expect(buf.String()).To(Equal("a:1|c\nb:2|c\n"))
	})

	It("reports write errors", func() {
		_, err := Dump(mustNewReader(replaytest.OneMsgThreeLines), failingWriter{})
		Expect(err).To(HaveOccurred())
	})
})
