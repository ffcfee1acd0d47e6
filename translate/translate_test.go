package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("label start missing", From("label %v missing", "start"))
	assert.Equal("line 12 nop", From("line %d %v", 12, "nop"))
}

func TestSetLanguageInvalid(t *testing.T) {
	assert := assert.New(t)

	assert.Error(SetLanguage("not a language tag!"))
	assert.Equal("ok", From("ok"))
}
