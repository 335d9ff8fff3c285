package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/pkg/response"
)

type ReviewHandler struct {
	Svc *application.ReviewService
}

func NewReviewHandler(svc *application.ReviewService) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

// ListForProduct answers for any numeric product id, existing or not.
func (h *ReviewHandler) ListForProduct(c *gin.Context) {
	id, ok := pathID(c, application.ErrProductNotFound)
	if !ok {
		return
	}
	reviews, err := h.Svc.ListForProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, reviews, "reviews")
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, application.ErrReviewNotFound)
	if !ok {
		return
	}
	r, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, r, "review")
}

func (h *ReviewHandler) Create(c *gin.Context) {
	productID, ok := pathID(c, application.ErrProductNotFound)
	if !ok {
		return
	}
	var req application.CreateReviewInput
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), identity(c), productID, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, r, "review created")
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, application.ErrReviewNotFound)
	if !ok {
		return
	}
	var req application.UpdateReviewInput
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.Svc.Update(c.Request.Context(), identity(c), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, r, "review updated")
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, application.ErrReviewNotFound)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), identity(c), id); err != nil {
		fail(c, err)
		return
	}
	response.OK[any](c, http.StatusOK, nil, "Review deleted")
}
