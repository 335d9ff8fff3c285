package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pogojump/pogojump-api/internal/container"
	"github.com/pogojump/pogojump-api/internal/interface/middleware"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

// NewEngine builds the gin engine with global middleware and every module registered.
func NewEngine(c *container.Container) *gin.Engine {
	cfg := c.Config
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(), middleware.RealIP(), middleware.Metrics(c.Metrics))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	// no configured origins: allow any
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	reg := NewRegistry(r, "/api")
	if cfg.HTTPLogEnabled && c.Logger != nil {
		reg.Use(middleware.AccessLog(c.Logger))
	}
	reg.Use(middleware.Errors())
	InitModules(reg, c)
	reg.RegisterAll()

	helpers.LogInfo(c.Logger, "routes registered", logrus.Fields{"modules": reg.Names()})
	return r
}
