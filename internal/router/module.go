package router

import "github.com/gin-gonic/gin"

// Module is a feature area that owns a set of routes.
type Module interface {
	Name() string
	Register(rg *gin.RouterGroup)
}
