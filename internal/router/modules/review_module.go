package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pogojump/pogojump-api/internal/interface/http"
	"github.com/pogojump/pogojump-api/internal/interface/middleware"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

type ReviewModule struct {
	Handler *handlers.ReviewHandler
	JWT     *helpers.JWTManager
}

func NewReviewModule(h *handlers.ReviewHandler, jwt *helpers.JWTManager) *ReviewModule {
	return &ReviewModule{Handler: h, JWT: jwt}
}

func (m *ReviewModule) Name() string { return "review" }

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products/:id/reviews", m.Handler.ListForProduct)
	rg.GET("/reviews/:id", m.Handler.Get)

	// ownership is checked by the service
	auth := rg.Group("", middleware.Auth(m.JWT))
	{
		auth.POST("/products/:id/reviews", m.Handler.Create)
		auth.PUT("/reviews/:id", m.Handler.Update)
		auth.DELETE("/reviews/:id", m.Handler.Delete)
	}
}
