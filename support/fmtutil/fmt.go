// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package fmtutil contains formatting helpers for lazy diagnostic output.
//
// The types in this package only do work when they are formatted, so they can
// be passed to debug-level log calls that are usually discarded.
package fmtutil

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex is a byte slice that renders as a hex-dumped string.
//
// If Limit is positive, at most Limit bytes are dumped and the number of
// omitted bytes is noted.
type Hex struct {
	Data  []byte
	Limit int
}

func (h Hex) String() string {
	data := h.Data
	if h.Limit <= 0 || len(data) <= h.Limit {
		return hex.Dump(data)
	}
	return fmt.Sprintf("%s(%d more byte(s))", hex.Dump(data[:h.Limit]), len(data)-h.Limit)
}

// HexSlice is a byte slice that renders as a sequence of hex bytes, instead
// of the default decimal bytes.
//
// Output as: "[4]byte{0xD4, 0x74, 0xD0, 0x60}"
type HexSlice []byte

func (hs HexSlice) String() string {
	var sb strings.Builder
	sb.Grow((6 * len(hs)) + 16)
	fmt.Fprintf(&sb, "[%d]byte{", len(hs))
	for i, b := range hs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02X", b)
	}
	sb.WriteString("}")
	return sb.String()
}
