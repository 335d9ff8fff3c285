package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/pkg/response"
)

type AuthHandler struct {
	Svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req application.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, res, "registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req application.LoginInput
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, res, "login successful")
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.Me(c.Request.Context(), identity(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, u, "profile")
}
