// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replaytest

// Lines contained in the captured fixtures.
const (
	HashedDistributionLine = "statsd.example.time.micros:2.39283|d|@1.000000|#environment:dev|c:2a25f7fc8fbf573d62053d7263dd2d440c07b6ab4d2b107e50b0d4df1f2ee15f"

	TimestampedDistributionLine = "statsd.example.time.micros:2.39283|d|@1.000000|#environment:dev,now:2023-08-23T21:24:59+00:00|c:2a25f7fc8fbf573d62053d7263dd2d440c07b6ab4d2b107e50b0d4df1f2ee15f"

	GaugeLine = "statsd.other.metric:8.7|g|@1.000000|#environment:dev"
)

// CounterLines are the lines held by OneMsgThreeLines, in order.
var CounterLines = []string{
	"statsd.other.metric:3|c|@1.000000|#environment:dev",
	"statsd.other.metric:8|c|@1.000000|#environment:dev",
	"statsd.other.metric:7|c|@1.000000|#environment:dev",
}

// TwoMsgsOneLineEach is a version 3 capture of two frames, each holding the
// single line HashedDistributionLine, followed by the all-zero sentinel.
var TwoMsgsOneLineEach = []byte{
	0xd4, 0x74, 0xd0, 0x60, 0xf3, 0xff, 0x00, 0x00, 0x93, 0x00, 0x00, 0x00,
	0x08, 0x84, 0xe2, 0x88, 0x8a, 0xe0, 0xb6, 0x87, 0xbf, 0x17, 0x10, 0x83,
	0x01, 0x1a, 0x83, 0x01, 0x73, 0x74, 0x61, 0x74, 0x73, 0x64, 0x2e, 0x65,
	0x78, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x2e, 0x74, 0x69, 0x6d, 0x65, 0x2e,
	0x6d, 0x69, 0x63, 0x72, 0x6f, 0x73, 0x3a, 0x32, 0x2e, 0x33, 0x39, 0x32,
	0x38, 0x33, 0x7c, 0x64, 0x7c, 0x40, 0x31, 0x2e, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0x7c, 0x23, 0x65, 0x6e, 0x76, 0x69, 0x72, 0x6f, 0x6e, 0x6d,
	0x65, 0x6e, 0x74, 0x3a, 0x64, 0x65, 0x76, 0x7c, 0x63, 0x3a, 0x32, 0x61,
	0x32, 0x35, 0x66, 0x37, 0x66, 0x63, 0x38, 0x66, 0x62, 0x66, 0x35, 0x37,
	0x33, 0x64, 0x36, 0x32, 0x30, 0x35, 0x33, 0x64, 0x37, 0x32, 0x36, 0x33,
	0x64, 0x64, 0x32, 0x64, 0x34, 0x34, 0x30, 0x63, 0x30, 0x37, 0x62, 0x36,
	0x61, 0x62, 0x34, 0x64, 0x32, 0x62, 0x31, 0x30, 0x37, 0x65, 0x35, 0x30,
	0x62, 0x30, 0x64, 0x34, 0x64, 0x66, 0x31, 0x66, 0x32, 0x65, 0x65, 0x31,
	0x35, 0x66, 0x0a, 0x93, 0x00, 0x00, 0x00, 0x08, 0x9f, 0xe9, 0xbd, 0x83,
	0xe3, 0xb6, 0x87, 0xbf, 0x17, 0x10, 0x83, 0x01, 0x1a, 0x83, 0x01, 0x73,
	0x74, 0x61, 0x74, 0x73, 0x64, 0x2e, 0x65, 0x78, 0x61, 0x6d, 0x70, 0x6c,
	0x65, 0x2e, 0x74, 0x69, 0x6d, 0x65, 0x2e, 0x6d, 0x69, 0x63, 0x72, 0x6f,
	0x73, 0x3a, 0x32, 0x2e, 0x33, 0x39, 0x32, 0x38, 0x33, 0x7c, 0x64, 0x7c,
	0x40, 0x31, 0x2e, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x7c, 0x23, 0x65,
	0x6e, 0x76, 0x69, 0x72, 0x6f, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x3a, 0x64,
	0x65, 0x76, 0x7c, 0x63, 0x3a, 0x32, 0x61, 0x32, 0x35, 0x66, 0x37, 0x66,
	0x63, 0x38, 0x66, 0x62, 0x66, 0x35, 0x37, 0x33, 0x64, 0x36, 0x32, 0x30,
	0x35, 0x33, 0x64, 0x37, 0x32, 0x36, 0x33, 0x64, 0x64, 0x32, 0x64, 0x34,
	0x34, 0x30, 0x63, 0x30, 0x37, 0x62, 0x36, 0x61, 0x62, 0x34, 0x64, 0x32,
	0x62, 0x31, 0x30, 0x37, 0x65, 0x35, 0x30, 0x62, 0x30, 0x64, 0x34, 0x64,
	0x66, 0x31, 0x66, 0x32, 0x65, 0x65, 0x31, 0x35, 0x66, 0x0a, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// OneMsgTwoLines is a version 3 capture of one frame whose payload holds
// TimestampedDistributionLine and GaugeLine.
var OneMsgTwoLines = []byte{
	0xd4, 0x74, 0xd0, 0x60, 0xf3, 0xff, 0x00, 0x00, 0xe6, 0x00, 0x00, 0x00,
	0x08, 0xf7, 0xc3, 0xb4, 0xdc, 0xfa, 0x85, 0x88, 0xbf, 0x17, 0x10, 0xd6,
	0x01, 0x1a, 0xd6, 0x01, 0x73, 0x74, 0x61, 0x74, 0x73, 0x64, 0x2e, 0x65,
	0x78, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x2e, 0x74, 0x69, 0x6d, 0x65, 0x2e,
	0x6d, 0x69, 0x63, 0x72, 0x6f, 0x73, 0x3a, 0x32, 0x2e, 0x33, 0x39, 0x32,
	0x38, 0x33, 0x7c, 0x64, 0x7c, 0x40, 0x31, 0x2e, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x30, 0x7c, 0x23, 0x65, 0x6e, 0x76, 0x69, 0x72, 0x6f, 0x6e, 0x6d,
	0x65, 0x6e, 0x74, 0x3a, 0x64, 0x65, 0x76, 0x2c, 0x6e, 0x6f, 0x77, 0x3a,
	0x32, 0x30, 0x32, 0x33, 0x2d, 0x30, 0x38, 0x2d, 0x32, 0x33, 0x54, 0x32,
	0x31, 0x3a, 0x32, 0x34, 0x3a, 0x35, 0x39, 0x2b, 0x30, 0x30, 0x3a, 0x30,
	0x30, 0x7c, 0x63, 0x3a, 0x32, 0x61, 0x32, 0x35, 0x66, 0x37, 0x66, 0x63,
	0x38, 0x66, 0x62, 0x66, 0x35, 0x37, 0x33, 0x64, 0x36, 0x32, 0x30, 0x35,
	0x33, 0x64, 0x37, 0x32, 0x36, 0x33, 0x64, 0x64, 0x32, 0x64, 0x34, 0x34,
	0x30, 0x63, 0x30, 0x37, 0x62, 0x36, 0x61, 0x62, 0x34, 0x64, 0x32, 0x62,
	0x31, 0x30, 0x37, 0x65, 0x35, 0x30, 0x62, 0x30, 0x64, 0x34, 0x64, 0x66,
	0x31, 0x66, 0x32, 0x65, 0x65, 0x31, 0x35, 0x66, 0x0a, 0x73, 0x74, 0x61,
	0x74, 0x73, 0x64, 0x2e, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x2e, 0x6d, 0x65,
	0x74, 0x72, 0x69, 0x63, 0x3a, 0x38, 0x2e, 0x37, 0x7c, 0x67, 0x7c, 0x40,
	0x31, 0x2e, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x7c, 0x23, 0x65, 0x6e,
	0x76, 0x69, 0x72, 0x6f, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x3a, 0x64, 0x65,
	0x76, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// OneMsgThreeLines is a version 3 capture of one frame whose payload holds
// the three CounterLines.
var OneMsgThreeLines = []byte{
	0xd4, 0x74, 0xd0, 0x60, 0xf3, 0xff, 0x00, 0x00, 0xa9, 0x00, 0x00, 0x00,
	0x08, 0xa7, 0xe3, 0x97, 0xff, 0xaf, 0xbb, 0x88, 0xbf, 0x17, 0x10, 0x99,
	0x01, 0x1a, 0x99, 0x01, 0x73, 0x74, 0x61, 0x74, 0x73, 0x64, 0x2e, 0x6f,
	0x74, 0x68, 0x65, 0x72, 0x2e, 0x6d, 0x65, 0x74, 0x72, 0x69, 0x63, 0x3a,
	0x33, 0x7c, 0x63, 0x7c, 0x40, 0x31, 0x2e, 0x30, 0x30, 0x30, 0x30, 0x30,
	0x30, 0x7c, 0x23, 0x65, 0x6e, 0x76, 0x69, 0x72, 0x6f, 0x6e, 0x6d, 0x65,
	0x6e, 0x74, 0x3a, 0x64, 0x65, 0x76, 0x0a, 0x73, 0x74, 0x61, 0x74, 0x73,
	0x64, 0x2e, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x2e, 0x6d, 0x65, 0x74, 0x72,
	0x69, 0x63, 0x3a, 0x38, 0x7c, 0x63, 0x7c, 0x40, 0x31, 0x2e, 0x30, 0x30,
	0x30, 0x30, 0x30, 0x30, 0x7c, 0x23, 0x65, 0x6e, 0x76, 0x69, 0x72, 0x6f,
	0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x3a, 0x64, 0x65, 0x76, 0x0a, 0x73, 0x74,
	0x61, 0x74, 0x73, 0x64, 0x2e, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x2e, 0x6d,
	0x65, 0x74, 0x72, 0x69, 0x63, 0x3a, 0x37, 0x7c, 0x63, 0x7c, 0x40, 0x31,
	0x2e, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x7c, 0x23, 0x65, 0x6e, 0x76,
	0x69, 0x72, 0x6f, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x3a, 0x64, 0x65, 0x76,
	0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
