// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package dogstatsd reconstructs dogstatsd metric lines from a replay capture.
//
// A client may send several newline-separated metric lines in one datagram,
// and an agent captures each datagram as one replay frame. Reader splits frame
// payloads back into individual lines and returns them one at a time, in
// capture order. Dump writes every line of a capture to an io.Writer.
//
// The content of a line is not interpreted: a line is returned exactly as it
// was submitted, minus its line terminator.
package dogstatsd
