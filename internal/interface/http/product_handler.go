package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/pkg/response"
)

type ProductHandler struct {
	Svc *application.ProductService
}

func NewProductHandler(svc *application.ProductService) *ProductHandler {
	return &ProductHandler{Svc: svc}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, products, "products")
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, application.ErrProductNotFound)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, p, "product")
}

func (h *ProductHandler) WithReviews(c *gin.Context) {
	id, ok := pathID(c, application.ErrProductNotFound)
	if !ok {
		return
	}
	p, err := h.Svc.WithReviews(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, p, "product with reviews")
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req application.CreateProductInput
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, p, "product created")
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, application.ErrProductNotFound)
	if !ok {
		return
	}
	var req application.UpdateProductInput
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, p, "product updated")
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, application.ErrProductNotFound)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.OK[any](c, http.StatusOK, nil, "Product deleted")
}
