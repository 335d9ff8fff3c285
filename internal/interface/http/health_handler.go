package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/pkg/response"
)

type HealthHandler struct {
	Store *application.DocumentStore
}

func NewHealthHandler(store *application.DocumentStore) *HealthHandler {
	return &HealthHandler{Store: store}
}

// Ready reports whether the document can be loaded from its backend.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"store": "ok"}, "ready")
}
