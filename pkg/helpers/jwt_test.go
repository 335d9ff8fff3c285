package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", 7*24*time.Hour)

	tok, exp, err := m.GenerateToken(42, "a@x.com", true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	tok, _, err := m.GenerateToken(1, "a@x.com", false)
	require.NoError(t, err)

	_, err = m.ParseToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_ExpiresAfterTTL(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	issued := time.Now()
	m.now = func() time.Time { return issued }
	tok, _, err := m.GenerateToken(1, "a@x.com", false)
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = m.ParseToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	tok, _, err := NewJWTManager("one", time.Hour).GenerateToken(1, "a@x.com", true)
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour).ParseToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_TamperedPayload(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	tok, _, err := m.GenerateToken(1, "a@x.com", false)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	forged, _, err := NewJWTManager("other", time.Hour).GenerateToken(1, "a@x.com", true)
	require.NoError(t, err)
	parts[1] = strings.Split(forged, ".")[1]

	_, err = m.ParseToken(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_RejectsUnsignedAndMalformed(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID:           1,
		IsAdmin:          true,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for _, tok := range []string{unsigned, "not-a-token", ""} {
		_, err := m.ParseToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}
}

func TestJWTManager_RequiresExpiry(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 1})
	tok, err := noExp.SignedString(m.Secret)
	require.NoError(t, err)

	_, err = m.ParseToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
