package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/pkg/response"
)

// Errors renders the last error attached with c.Error as the response
// envelope, unless the handler already wrote a body.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		e := application.AsError(c.Errors.Last().Err)
		response.Fail(c, StatusFor(e.Kind), e.Message, &response.ErrorBody{Code: e.Kind.String(), Details: e.Details})
	}
}

// StatusFor maps an error kind to its HTTP status. Bad credentials answer 400
// like any other bad input.
func StatusFor(k application.Kind) int {
	switch k {
	case application.KindValidation, application.KindInvalidCredentials:
		return http.StatusBadRequest
	case application.KindUnauthenticated:
		return http.StatusUnauthorized
	case application.KindForbidden:
		return http.StatusForbidden
	case application.KindNotFound:
		return http.StatusNotFound
	case application.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
