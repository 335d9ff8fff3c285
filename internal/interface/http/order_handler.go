package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/pkg/response"
)

type OrderHandler struct {
	Svc *application.OrderService
}

func NewOrderHandler(svc *application.OrderService) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, orders, "orders")
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListMine(c.Request.Context(), identity(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, orders, "orders")
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req application.CreateOrderInput
	if !bindJSON(c, &req) {
		return
	}
	o, err := h.Svc.Create(c.Request.Context(), identity(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, o, "order placed")
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, application.ErrOrderNotFound)
	if !ok {
		return
	}
	var req application.UpdateOrderInput
	if !bindJSON(c, &req) {
		return
	}
	o, err := h.Svc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, o, "order updated")
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, application.ErrOrderNotFound)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.OK[any](c, http.StatusOK, nil, "Order deleted")
}
