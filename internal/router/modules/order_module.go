package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pogojump/pogojump-api/internal/interface/http"
	"github.com/pogojump/pogojump-api/internal/interface/middleware"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

type OrderModule struct {
	Handler *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewOrderModule(h *handlers.OrderHandler, jwt *helpers.JWTManager) *OrderModule {
	return &OrderModule{Handler: h, JWT: jwt}
}

func (m *OrderModule) Name() string { return "order" }

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("", middleware.Auth(m.JWT))
	{
		auth.GET("/orders/my", m.Handler.ListMine)
		auth.POST("/orders", m.Handler.Create)
	}

	admin := rg.Group("", middleware.Auth(m.JWT), middleware.RequireAdmin())
	{
		admin.GET("/orders", m.Handler.ListAll)
		admin.PUT("/orders/:id", m.Handler.UpdateStatus)
		admin.DELETE("/orders/:id", m.Handler.Delete)
	}
}
