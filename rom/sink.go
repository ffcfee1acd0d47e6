// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rom

import (
	"bufio"
	"fmt"
	"io"

	"github.com/golang/glog"
)

// Sink accepts encoded bytes tagged with their load address, in program
// order. Emit may be called with an empty code.
type Sink interface {
	Emit(address uint16, code []byte) error
	Close() error
}

// NewSink returns a sink writing format to w. The addressed format
// subtracts offset from every address at or above it.
func NewSink(format Format, w io.Writer, offset uint16) (sink Sink, err error) {
	out := &writer{w: bufio.NewWriter(w)}

	switch format {
	case FORMAT_BINARY:
		sink = &binarySink{writer: out}
	case FORMAT_RAW:
		out.printf("%s\n", HEADER_RAW)
		sink = &rawSink{writer: out}
	case FORMAT_ADDRESSED:
		out.printf("%s\n", HEADER_ADDRESSED)
		sink = &addressedSink{writer: out, offset: offset, next: -1}
	default:
		err = ErrFormatUnknown(format.String())
	}

	return
}

// writer keeps the first write error.
type writer struct {
	w      *bufio.Writer
	err    error
	closed bool
}

func (out *writer) printf(format string, args ...any) {
	if out.err != nil {
		return
	}
	_, out.err = fmt.Fprintf(out.w, format, args...)
}

func (out *writer) write(data []byte) {
	if out.err != nil {
		return
	}
	_, out.err = out.w.Write(data)
}

func (out *writer) check() error {
	if out.closed {
		return ErrSinkClosed
	}
	return out.err
}

func (out *writer) close() (err error) {
	if out.closed {
		return ErrSinkClosed
	}
	out.closed = true

	if out.err != nil {
		return out.err
	}

	return out.w.Flush()
}

// binarySink writes a flat image, ignoring addresses.
type binarySink struct {
	*writer
}

func (bs *binarySink) Emit(address uint16, code []byte) error {
	if err := bs.check(); err != nil {
		return err
	}
	bs.write(code)
	return bs.err
}

func (bs *binarySink) Close() error {
	return bs.close()
}

// rawSink writes eight hex bytes per line, ignoring addresses.
type rawSink struct {
	*writer
	count int
}

func (rs *rawSink) Emit(address uint16, code []byte) error {
	if err := rs.check(); err != nil {
		return err
	}

	for _, b := range code {
		rs.printf("%02x ", b)
		rs.count++
		if rs.count%8 == 0 {
			rs.printf("\n")
		}
	}

	return rs.err
}

func (rs *rawSink) Close() error {
	if rs.err == nil && !rs.closed && rs.count%8 != 0 {
		rs.printf("\n")
	}
	return rs.close()
}

// addressedSink writes hex bytes, starting a new address label at every
// discontinuity and after every 32 bytes.
type addressedSink struct {
	*writer
	offset uint16
	next   int // Address expected next, or -1 before the first byte.
	count  int // Bytes since the last label.
	warned bool
}

func (as *addressedSink) label(addr int) {
	shown := addr
	if int(as.offset) <= addr {
		shown -= int(as.offset)
	} else if !as.warned {
		glog.Warningf("address %04x below base address %04x, ignoring base address", addr, as.offset)
		as.warned = true
	}

	if as.next >= 0 {
		as.printf("\n")
	}
	as.printf("%04x: ", shown)
	as.count = 0
}

func (as *addressedSink) Emit(address uint16, code []byte) error {
	if err := as.check(); err != nil {
		return err
	}

	for n, b := range code {
		addr := int(address) + n
		if addr != as.next || as.count == 32 {
			as.label(addr)
		}
		as.printf("%02x ", b)
		as.count++
		as.next = addr + 1
	}

	return as.err
}

func (as *addressedSink) Close() error {
	if as.err == nil && !as.closed && as.next >= 0 {
		as.printf("\n")
	}
	return as.close()
}
