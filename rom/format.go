// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rom

import (
	"strings"
)

// RAM_ADDRESS is the load address of programs assembled for RAM. The
// addressed hex format subtracts it so the image starts at zero.
const RAM_ADDRESS = uint16(0x8000)

const (
	HEADER_RAW       = "v2.0 raw"
	HEADER_ADDRESSED = "v3.0 hex words addressed"
)

// Format is an output image format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_BINARY    = Format(0) // binary
	FORMAT_RAW       = Format(1) // raw
	FORMAT_ADDRESSED = Format(2) // addressed
)

var formatAlias = map[string]Format{
	"binary":    FORMAT_BINARY,
	"bin":       FORMAT_BINARY,
	"b":         FORMAT_BINARY,
	"raw":       FORMAT_RAW,
	"v2":        FORMAT_RAW,
	"2":         FORMAT_RAW,
	"addressed": FORMAT_ADDRESSED,
	"v3":        FORMAT_ADDRESSED,
	"3":         FORMAT_ADDRESSED,
}

// ParseFormat returns the format named by name, or one of its aliases.
func ParseFormat(name string) (format Format, err error) {
	format, ok := formatAlias[strings.ToLower(name)]
	if !ok {
		err = ErrFormatUnknown(name)
	}
	return
}

// Ext returns the customary file extension of the format.
func (format Format) Ext() string {
	if format == FORMAT_BINARY {
		return ".bin"
	}
	return ".hex"
}

// Set implements pflag.Value.
func (format *Format) Set(name string) (err error) {
	parsed, err := ParseFormat(name)
	if err != nil {
		return
	}
	*format = parsed
	return
}

// Type implements pflag.Value.
func (format *Format) Type() string {
	return "format"
}
