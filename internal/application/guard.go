package application

import (
	"strings"

	"github.com/pogojump/pogojump-api/pkg/helpers"
)

// Identity is the caller derived from a verified token.
type Identity struct {
	ID      int64
	Email   string
	IsAdmin bool
}

// Authenticate requires "Bearer <token>" and a token that verifies.
func Authenticate(jwt *helpers.JWTManager, authorization string) (Identity, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorization), " ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return Identity{}, ErrNoToken
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return Identity{}, ErrInvalidToken
	}
	claims, err := jwt.ParseToken(token)
	if err != nil {
		return Identity{}, &Error{Kind: KindUnauthenticated, Message: ErrInvalidToken.Message, Err: err}
	}
	return Identity{ID: claims.UserID, Email: claims.Email, IsAdmin: claims.IsAdmin}, nil
}

func RequireAdmin(id Identity) error {
	if !id.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

// RequireOwnerOrAdmin passes when the caller owns the resource or is an admin.
func RequireOwnerOrAdmin(id Identity, ownerID int64, msg string) error {
	if id.ID == ownerID || id.IsAdmin {
		return nil
	}
	return Forbidden(msg)
}
