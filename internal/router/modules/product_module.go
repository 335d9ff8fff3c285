package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pogojump/pogojump-api/internal/interface/http"
	"github.com/pogojump/pogojump-api/internal/interface/middleware"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

// ProductModule serves the catalog. Reads are public, writes are admin only.
type ProductModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.JWTManager
}

func NewProductModule(h *handlers.ProductHandler, jwt *helpers.JWTManager) *ProductModule {
	return &ProductModule{Handler: h, JWT: jwt}
}

func (m *ProductModule) Name() string { return "product" }

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.List)
	rg.GET("/products/:id", m.Handler.Get)
	rg.GET("/products/:id/with-reviews", m.Handler.WithReviews)

	admin := rg.Group("", middleware.Auth(m.JWT), middleware.RequireAdmin())
	{
		admin.POST("/products", m.Handler.Create)
		admin.PUT("/products/:id", m.Handler.Update)
		admin.DELETE("/products/:id", m.Handler.Delete)
	}
}
