package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pogojump/pogojump-api/internal/interface/http"
	"github.com/pogojump/pogojump-api/internal/interface/middleware"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

// AuthModule: POST /auth/register, POST /auth/login, GET /auth/me (bearer)
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Name() string { return "auth" }

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)

	auth := rg.Group("", middleware.Auth(m.JWT))
	auth.GET("/auth/me", m.Handler.Me)
}
