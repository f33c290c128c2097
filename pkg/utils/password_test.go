package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("senha-forte-1")
	require.NoError(t, err)
	require.NotEqual(t, "senha-forte-1", hash)

	assert.True(t, CheckPasswordHash("senha-forte-1", hash))
	assert.False(t, CheckPasswordHash("senha-errada", hash))
	assert.False(t, CheckPasswordHash("senha-forte-1", "not-a-hash"))
}
