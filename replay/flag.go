// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package replay

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// CompressionFlag is a pflag.Value implementation that stores a compression
// value.
type CompressionFlag Compression

var _ pflag.Value = (*CompressionFlag)(nil)

func (cf *CompressionFlag) String() string { return Compression(*cf).String() }

// Set implements pflag.Value.
func (cf *CompressionFlag) Set(v string) error {
	c, err := ParseCompression(v)
	if err != nil {
		return err
	}
	*cf = CompressionFlag(c)
	return nil
}

// Type implements pflag.Value.
func (cf *CompressionFlag) Type() string { return "compression" }

// Value returns the compression value held by this flag.
func (cf CompressionFlag) Value() Compression { return Compression(cf) }

// ParseCompression parses a compression name, as listed by
// CompressionFlagValues. Parsing is case-insensitive.
func ParseCompression(v string) (Compression, error) {
	if c, ok := Compression_value[strings.ToLower(v)]; ok {
		return c, nil
	}
	return CompressionAuto, errors.Errorf("unknown compression type: %q", v)
}

// CompressionFlagValues returns the list of possible values for a
// CompressionFlag.
func CompressionFlagValues() string {
	values := make([]Compression, 0, len(Compression_name))
	for value := range Compression_name {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	opts := make([]string, len(values))
	for i, v := range values {
		opts[i] = v.String()
	}
	return strings.Join(opts, ", ")
}
