package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncrement(t *testing.T) {
	a := 1
	b := PreIncrement(&a)
	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)

	a = 1
	b = PostIncrement(&a)
	assert.Equal(t, 2, a)
	assert.Equal(t, 1, b)
}
