package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	st := SymbolTable{}
	assert.NoError(st.Define("end", 0x8010))
	assert.NoError(st.Define("start", 0x8000))
	assert.NoError(st.Define("begin", 0x8000))
	assert.ErrorIs(st.Define("start", 0x9000), ErrLabelDuplicate)

	addr, ok := st.Lookup("start")
	assert.True(ok)
	assert.Equal(uint16(0x8000), addr)

	_, ok = st.Lookup("missing")
	assert.False(ok)

	var names []string
	for name := range st.Sorted() {
		names = append(names, name)
	}
	assert.Equal([]string{"begin", "start", "end"}, names)

	var buf strings.Builder
	n, err := st.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(buf.Len()), n)
	assert.Equal("'begin': 0x8000\n'start': 0x8000\n'end': 0x8010\n", buf.String())
}

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	var ops []Operation
	for _, line := range []string{
		":zero nop",
		".org 0x100",
		":org ld r0,0x10",
		":data .ds 4",
		":text .dt 'ab'",
		":last",
	} {
		parsed, err := p.Parse(line)
		assert.NoError(err)
		ops = append(ops, parsed...)
	}

	symbols, err := Resolve(ops, nil)
	assert.NoError(err)
	assert.Equal(SymbolTable{
		"zero": 0x0000,
		"org":  0x0100,
		"data": 0x0103,
		"text": 0x0107,
		"last": 0x010a,
	}, symbols)

	for _, op := range ops {
		assert.True(op.Resolved)
	}
	assert.Equal(uint16(0x0100), ops[2].Address)
}
