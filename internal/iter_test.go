package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int(nil)), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for v := range seq {
		first = append(first, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, first)
}

func TestIterRepeat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"x", "x", "x"}, slices.Collect(IterRepeat("x", 3)))
	assert.Empty(slices.Collect(IterRepeat("x", 0)))
	assert.Empty(slices.Collect(IterRepeat("x", -2)))
}
