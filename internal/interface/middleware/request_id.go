package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pogojump/pogojump-api/pkg/response"
)

const HeaderRequestID = "X-Request-ID"

// RequestID injects a request id into the gin context and echoes it back.
// A well-formed incoming X-Request-ID is reused.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
