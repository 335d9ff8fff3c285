package helpers

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash (over 72 bytes).
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// PasswordHasher hashes passwords with bcrypt at a fixed cost.
type PasswordHasher struct {
	Cost int

	dummyOnce sync.Once
	dummy     string
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{Cost: cost}
}

// HashPassword hashes the plain text password using bcrypt
func (h *PasswordHasher) HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func (h *PasswordHasher) CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// DummyHash is a hash at the hasher's cost that matches no real account.
// Comparing against it makes a lookup miss cost as much as a wrong password.
func (h *PasswordHasher) DummyHash() string {
	h.dummyOnce.Do(func() {
		b, err := bcrypt.GenerateFromPassword([]byte("pogojump-no-such-user"), h.Cost)
		if err == nil {
			h.dummy = string(b)
		}
	})
	return h.dummy
}
