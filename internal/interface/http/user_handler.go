package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/pkg/response"
)

type UserHandler struct {
	Svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, users, "users")
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req application.UpdateProfileInput
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), identity(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, u, "profile updated")
}
