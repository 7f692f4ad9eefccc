package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("42")
	require.NoError(t, err)
	assert.Equal(t, ID(42), v)

	for _, in := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(Nil()))
	assert.False(t, IsNil(1))
}
