package rom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageWriteTo(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Width: 12, Data: []uint32{0x1, 0xabc, 0xfff1, 0x2}, Row: 2}

	var buf strings.Builder
	n, err := img.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(int64(buf.Len()), n)
	assert.Equal("v2.0 raw\n001 abc \nff1 002 \n", buf.String())

	img.Addressed = true
	buf.Reset()
	_, err = img.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal("v3.0 hex words addressed\n00: 001 abc \n02: ff1 002 \n", buf.String())

	img.Row = 0
	buf.Reset()
	_, err = img.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal("v3.0 hex words addressed\n00: 001 abc ff1 002 \n", buf.String())
}

func TestImageSlice(t *testing.T) {
	assert := assert.New(t)

	img := &Image{Width: 24, Data: []uint32{0x123456, 0xabcdef}, Row: 8, Addressed: true}

	assert.Equal([]uint32{0x12, 0xab}, img.Slice(16).Data)
	assert.Equal([]uint32{0x34, 0xcd}, img.Slice(8).Data)

	low := img.Slice(0)
	assert.Equal([]uint32{0x56, 0xef}, low.Data)
	assert.Equal(8, low.Width)
	assert.Equal(8, low.Row)
	assert.True(low.Addressed)
}

func TestImageWidth(t *testing.T) {
	assert := assert.New(t)

	for _, width := range []int{0, 6, 36} {
		img := &Image{Width: width}
		_, err := img.WriteTo(&strings.Builder{})
		assert.ErrorIs(err, ErrWidth, width)
	}

	img := &Image{Width: 32, Data: []uint32{0xffffffff}}
	var buf strings.Builder
	_, err := img.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal("v2.0 raw\nffffffff \n", buf.String())
}
