package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewBcryptPasswordHasherWithCost(4) // low cost to keep tests fast

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
	assert.Error(t, hasher.Compare(hash, "wrong password"))
}

func TestCompareInvalidHash(t *testing.T) {
	hasher := NewBcryptPasswordHasherWithCost(4)

	assert.Error(t, hasher.Compare("not-a-bcrypt-hash", "anything"))
}

func TestOutOfRangeCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptPasswordHasherWithCost(99)

	hash, err := hasher.Hash("some password")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "some password"))
}
