package cpu

import (
	"errors"

	"github.com/ezrec/sap2/translate"
)

var f = translate.From

var (
	ErrRegisterInvalid = errors.New(f("register invalid"))
)

// ErrMnemonicUnknown is a descriptor table miss.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("mnemonic '%v' unknown", string(err))
}

type ErrShapeNoOpcode Shape

func (err ErrShapeNoOpcode) Error() string {
	return f("shape %v has no opcode", Shape(err).String())
}
