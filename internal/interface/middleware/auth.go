package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

const identityKey = "identity"

// Auth verifies the bearer token and stores the caller's Identity in the context.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := application.Authenticate(jwt, c.GetHeader("Authorization"))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := CurrentIdentity(c)
		if err := application.RequireAdmin(id); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity set by Auth.
func CurrentIdentity(c *gin.Context) (application.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return application.Identity{}, false
	}
	id, ok := v.(application.Identity)
	return id, ok
}
