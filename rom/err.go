package rom

import (
	"errors"

	"github.com/ezrec/sap2/translate"
)

var f = translate.From

var (
	ErrSinkClosed = errors.New(f("sink closed"))
	ErrWidth      = errors.New(f("word width invalid"))
)

// ErrFormatUnknown is an unrecognized output format name.
type ErrFormatUnknown string

func (err ErrFormatUnknown) Error() string {
	return f("format '%v' unknown", string(err))
}
