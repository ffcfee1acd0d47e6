package microcode

import (
	"errors"

	"github.com/ezrec/sap2/translate"
)

var f = translate.From

var (
	ErrArgs = errors.New(f("invalid arguments"))
)

// ErrKeyDuplicate is a control line defined twice.
type ErrKeyDuplicate string

func (err ErrKeyDuplicate) Error() string {
	return f("control line %v already defined", string(err))
}

// ErrKeyUnknown is a step naming an undefined control line.
type ErrKeyUnknown string

func (err ErrKeyUnknown) Error() string {
	return f("control line %v not defined", string(err))
}

// ErrBitDuplicate is a control word bit used by two lines.
type ErrBitDuplicate int

func (err ErrBitDuplicate) Error() string {
	return f("control bit %d already used", int(err))
}

// ErrBitRange is a control line bit outside the control word.
type ErrBitRange int

func (err ErrBitRange) Error() string {
	return f("control bit %d outside the control word", int(err))
}

// ErrOpcodeDuplicate is an opcode byte defined twice.
type ErrOpcodeDuplicate string

func (err ErrOpcodeDuplicate) Error() string {
	return f("opcode %v already defined", string(err))
}

// ErrStepsOverflow is an opcode whose fetch and execute steps do not fit
// in one row.
type ErrStepsOverflow string

func (err ErrStepsOverflow) Error() string {
	return f("opcode %v has too many steps", string(err))
}
