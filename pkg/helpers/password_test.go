package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, h.CompareHashAndPassword(hash, "hunter22"))
	assert.False(t, h.CompareHashAndPassword(hash, "hunter23"))

	again, err := h.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestNewPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(99).Cost)
	assert.Equal(t, 12, NewPasswordHasher(12).Cost)
}

func TestPasswordHasher_DummyHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	dummy := h.DummyHash()
	require.NotEmpty(t, dummy)
	assert.Equal(t, dummy, h.DummyHash(), "computed once")

	cost, err := bcrypt.Cost([]byte(dummy))
	require.NoError(t, err)
	assert.Equal(t, h.Cost, cost)
	assert.False(t, h.CompareHashAndPassword(dummy, "hunter22"))
}
