package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id1, err := GenerateID()
	require.NoError(t, err)

	id2, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	assert.Equal(t, true, IsValid(id1))
}

func TestIsValid(t *testing.T) {
	assert.Equal(t, true, IsValid("3f2504e0-4f89-11d3-9a0c-0305e82c3301"))
	assert.Equal(t, false, IsValid("507f1f77bcf86cd799439011"))
	assert.Equal(t, false, IsValid(""))
}
