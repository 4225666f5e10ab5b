package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationToken(t *testing.T) {
	token, hashed, err := GenerateVerificationToken()
	require.NoError(t, err)

	assert.Len(t, token, 64)
	assert.Equal(t, HashToken(token), hashed)
	assert.NotEqual(t, token, hashed)
}

func TestGenerateVerificationTokenIsUnique(t *testing.T) {
	first, _, err := GenerateVerificationToken()
	require.NoError(t, err)
	second, _, err := GenerateVerificationToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
