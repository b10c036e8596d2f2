package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("field imm16 out of range", From("field %v out of range", "imm16"))
	assert.Equal("plain", From("plain"))
}
