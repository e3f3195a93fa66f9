package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("secret1", 10)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.NotContains(t, hash, "secret1")
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1", 10)
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "secret1"))
	assert.Error(t, CheckPassword(hash, "secret2"))
	assert.Error(t, CheckPassword("not-a-hash", "secret1"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret1", 10)
	require.NoError(t, err)
	second, err := HashPassword("secret1", 10)
	require.NoError(t, err)

	// Same input, different salt, different hash.
	assert.NotEqual(t, first, second)
}
