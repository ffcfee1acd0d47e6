package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/sap2/translate"
)

var f = translate.From

var (
	// Resolution errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrAddressRange   = errors.New(f("address beyond 0xffff"))

	// Encoding errors
	ErrSizeMismatch  = errors.New(f("encoded size does not match operation size"))
	ErrOperandKind   = errors.New(f("operand kind invalid"))
	ErrOperandAbsent = errors.New(f("operand missing"))

	// Lexical errors
	ErrPattern = errors.New(f("character pattern invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParse is a grammar failure at a column of a line.
type ErrParse struct {
	Column   int      // 1-based column of the farthest failure.
	Expected []string // Tokens or rules tried at that column.
}

func (err *ErrParse) Error() string {
	return f("column %d expected %v", err.Column, strings.Join(err.Expected, ", "))
}

// ErrSyntax locates an error in the source.
type ErrSyntax struct {
	File   string
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	if len(err.File) != 0 {
		return f("%v:%d '%v' %v", err.File, err.LineNo, err.Line, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrFailed collects the line-level errors of an assembly.
type ErrFailed struct {
	Errors []error
}

func (err *ErrFailed) Error() string {
	var msgs []string
	for _, e := range err.Errors {
		msgs = append(msgs, e.Error())
	}
	msgs = append(msgs, f("assembly failed with %d errors", len(err.Errors)))
	return strings.Join(msgs, "\n")
}

func (err *ErrFailed) Unwrap() []error {
	return err.Errors
}
