package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"heritage-backend/internal/domains/cart/model"
	"heritage-backend/internal/domains/cart/service"
	"heritage-backend/internal/shared/middleware"
	"heritage-backend/internal/shared/response"
)

// Handler handles HTTP requests for the cart
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetCart handles GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "Missing session")
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		response.InternalServerError(c, "Failed to get cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// SetItem handles POST /cart/items
func (h *Handler) SetItem(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "Missing session")
		return
	}

	var req model.SetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Invalid item", err)
		return
	}

	cart, err := h.service.SetItem(c.Request.Context(), sessionID, req)
	if err != nil {
		response.InternalServerError(c, "Failed to update cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// Increment handles POST /cart/items/:productId/increment
func (h *Handler) Increment(c *gin.Context) {
	h.applyQuantityChange(c, h.service.Increment)
}

// Decrement handles POST /cart/items/:productId/decrement
func (h *Handler) Decrement(c *gin.Context) {
	h.applyQuantityChange(c, h.service.Decrement)
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *Handler) RemoveItem(c *gin.Context) {
	h.applyQuantityChange(c, h.service.RemoveItem)
}

// Clear handles DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "Missing session")
		return
	}

	if err := h.service.Clear(c.Request.Context(), sessionID); err != nil {
		response.InternalServerError(c, "Failed to clear cart")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

// ApplyCoupon handles POST /cart/coupon
func (h *Handler) ApplyCoupon(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "Missing session")
		return
	}

	var req model.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, "Invalid coupon request", err)
		return
	}

	cart, known, err := h.service.ApplyCoupon(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		response.InternalServerError(c, "Failed to apply coupon")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"cart":       cart,
		"recognized": known,
	})
}

// RemoveCoupon handles DELETE /cart/coupon
func (h *Handler) RemoveCoupon(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "Missing session")
		return
	}

	cart, err := h.service.RemoveCoupon(c.Request.Context(), sessionID)
	if err != nil {
		response.InternalServerError(c, "Failed to remove coupon")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// applyQuantityChange factors the shared session + product id plumbing
func (h *Handler) applyQuantityChange(
	c *gin.Context,
	op func(ctx context.Context, sessionID, productID string) (*model.CartResponse, error),
) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "Missing session")
		return
	}

	productID := c.Param("productId")
	if productID == "" {
		response.BadRequest(c, "Missing product id")
		return
	}

	cart, err := op(c.Request.Context(), sessionID, productID)
	if err != nil {
		response.InternalServerError(c, "Failed to update cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}
