package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"heritage-backend/internal/domains/order/model"
	"heritage-backend/internal/domains/order/service"
	"heritage-backend/internal/domains/receipt"
	"heritage-backend/internal/shared/response"
)

// Handler handles HTTP requests for orders
type Handler struct {
	service service.OrderService
	receipt *receipt.Generator
}

// NewHandler creates handler instance
func NewHandler(service service.OrderService, receiptGen *receipt.Generator) *Handler {
	return &Handler{
		service: service,
		receipt: receiptGen,
	}
}

// Get handles GET /orders/:orderId
// The confirmation view resolves the order here. A missing entry is a
// user-facing not-found with a way back home, never a crash.
func (h *Handler) Get(c *gin.Context) {
	order, err := h.service.Get(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// Timeline handles GET /orders/:orderId/timeline
func (h *Handler) Timeline(c *gin.Context) {
	timeline, err := h.service.Timeline(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, timeline)
}

// UpdateStatus handles PATCH /orders/:orderId/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Invalid status", err)
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// Cancel handles POST /orders/:orderId/cancel
func (h *Handler) Cancel(c *gin.Context) {
	order, err := h.service.Cancel(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// Receipt handles GET /orders/:orderId/receipt
// Streams the rendered document as a download; printing is the client's
// side of the contract.
func (h *Handler) Receipt(c *gin.Context) {
	order, err := h.service.Get(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	doc, err := h.receipt.Render(order)
	if err != nil {
		response.InternalServerError(c, "Failed to render receipt")
		return
	}

	filename := h.receipt.Filename(order.OrderID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", doc)
}

// writeError maps domain errors onto the response envelope
func (h *Handler) writeError(c *gin.Context, err error) {
	var orderErr *model.OrderError
	code := "ORDER_ERROR"
	if errors.As(err, &orderErr) {
		code = orderErr.Code
	}

	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		// Redirect affordance for the confirmation page's missing-order case
		response.ErrorWithDetails(c, http.StatusNotFound, code,
			"Order not found, it may have expired", gin.H{"redirect": "/"})
	case errors.Is(err, model.ErrInvalidStatusTransition),
		errors.Is(err, model.ErrOrderNotCancellable):
		response.ErrorResponse(c, http.StatusConflict, code, err.Error())
	case errors.Is(err, model.ErrInvalidOrderStatus):
		response.ErrorResponse(c, http.StatusBadRequest, code, err.Error())
	default:
		response.InternalServerError(c, "Order operation failed")
	}
}
