package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWord(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		value  byte
		signed bool
		word   uint32
	}{
		{0, false, 0x0000007e},
		{7, false, 0x00000032},
		{10, false, 0x0000127e},
		{99, false, 0x0000f6f6},
		{100, false, 0x00127e7e},
		{255, false, 0x00bce6e6},
		{127, true, 0x0012bc32},
		{128, true, 0x8012bcfe},
		{255, true, 0x80000012},
		{246, true, 0x8000127e},
	}

	for _, entry := range table {
		assert.Equal(entry.word, Word(entry.value, entry.signed), "%d %v", entry.value, entry.signed)
	}
}

func TestImage(t *testing.T) {
	assert := assert.New(t)

	img := Image()
	require.Len(t, img.Data, 512)
	assert.Equal(Word(200, false), img.Data[200])
	assert.Equal(Word(200, true), img.Data[256+200])

	var buf strings.Builder
	_, err := img.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(strings.HasPrefix(buf.String(), "v2.0 raw\n0000007e 00000012 000000bc "))
	assert.Len(strings.Fields(buf.String()), 2+512)
}
