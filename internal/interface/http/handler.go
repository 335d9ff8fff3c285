package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/internal/interface/middleware"
	"github.com/pogojump/pogojump-api/pkg/validation"
)

// bindJSON decodes the request body into dst. An empty body decodes as {} so
// the operation reports which fields are missing.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	_ = c.Error(application.Validation("Invalid request body", validation.ToDetails(err)))
	return false
}

// pathID parses the :id parameter. Ids that are not integers cannot name
// anything, so they resolve to notFound.
func pathID(c *gin.Context, notFound error) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.Error(notFound)
		return 0, false
	}
	return id, true
}

func identity(c *gin.Context) application.Identity {
	id, _ := middleware.CurrentIdentity(c)
	return id
}

func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}
