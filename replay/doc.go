// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package replay reads and writes dogstatsd replay captures.
//
// A replay capture is a single binary file recorded by a dogstatsd agent. It
// consists of:
//
//	- An 8-byte header: the magic marker D4 74 D0 60, a version byte
//	  (0xF0 | version), and three reserved bytes.
//	- A series of frames. Each frame is a little-endian uint32 size followed
//	  by that many bytes holding one encoded UnixDogstatsdMsg (see the dsdpb
//	  package).
//	- A closing marker: a frame size of zero, followed by a little-endian
//	  uint32 trailer size and, if that is non-zero, an encoded TaggerState.
//	  A capture without tagger state therefore ends in eight zero bytes.
//
// Captures are frequently cut short when the recording agent is terminated.
// Reader treats a missing closing marker or a truncated trailing frame as the
// end of the capture rather than as an error.
//
// Captures may also be compressed as a whole. OpenFile loads a capture into
// memory and transparently removes gzip, snappy, or zstd compression.
package replay
