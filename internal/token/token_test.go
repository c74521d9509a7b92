package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	first, err := New()
	assert.NoError(t, err)
	assert.Len(t, first, TokenBytes*2)

	second, err := New()
	assert.NoError(t, err)
	assert.Len(t, second, TokenBytes*2)

	assert.NotEqual(t, first, second, "two issued tokens must differ")
	assert.NotEmpty(t, first)
}
