package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pogojump/pogojump-api/internal/interface/http"
	"github.com/pogojump/pogojump-api/internal/interface/middleware"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

// UserModule: GET /users (admin), PUT /users/profile (self)
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Name() string { return "user" }

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("", middleware.Auth(m.JWT))
	auth.PUT("/users/profile", m.Handler.UpdateProfile)

	admin := rg.Group("", middleware.Auth(m.JWT), middleware.RequireAdmin())
	admin.GET("/users", m.Handler.List)
}
