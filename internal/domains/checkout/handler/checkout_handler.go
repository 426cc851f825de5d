package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartModel "heritage-backend/internal/domains/cart/model"
	"heritage-backend/internal/domains/checkout/model"
	"heritage-backend/internal/domains/checkout/service"
	orderModel "heritage-backend/internal/domains/order/model"
	"heritage-backend/internal/shared/middleware"
	"heritage-backend/internal/shared/response"
)

// Handler handles HTTP requests for checkout
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Validate handles POST /checkout/validate
// Runs the rule-set without submitting, so the form can show inline
// errors on blur. Also reports password strength for registration forms.
func (h *Handler) Validate(c *gin.Context) {
	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fields := h.service.Validate(req)

	response.Success(c, http.StatusOK, gin.H{
		"valid":  len(fields) == 0,
		"fields": fields,
	})
}

// ValidateRegistration handles POST /checkout/validate-registration
// Role-keyed registration validation plus the strength label.
func (h *Handler) ValidateRegistration(c *gin.Context) {
	var req model.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fields := model.Fields(req.Validate())
	score := model.StrengthScore(req.Password)

	response.Success(c, http.StatusOK, gin.H{
		"valid":          len(fields) == 0,
		"fields":         fields,
		"strength_score": score,
		"strength_label": model.StrengthLabel(score),
	})
}

// Submit handles POST /checkout
func (h *Handler) Submit(c *gin.Context) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		response.BadRequest(c, "Missing session")
		return
	}

	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Prefill from the auth provider's identity context when the form
	// left customer fields blank
	if identity, ok := middleware.GetCustomerIdentity(c); ok {
		req.Customer = prefillCustomer(req.Customer, identity)
	}

	order, fields, err := h.service.Submit(c.Request.Context(), sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidationFailed):
			response.UnprocessableEntity(c, "Please correct the highlighted fields", fields)
		case errors.Is(err, cartModel.ErrCartNotFound), errors.Is(err, orderModel.ErrEmptyCart):
			response.Conflict(c, "Cart is empty")
		case errors.Is(err, model.ErrSubmitCancelled):
			// Client went away before the commit point; nothing was
			// created and the discarded result must not read as success
			c.AbortWithStatus(http.StatusRequestTimeout)
		default:
			response.InternalServerError(c, "Checkout failed, please try again")
		}
		return
	}

	response.Success(c, http.StatusCreated, order)
}

func prefillCustomer(customer model.CustomerInfo, identity middleware.CustomerIdentity) model.CustomerInfo {
	if customer.FirstName == "" {
		customer.FirstName = identity.FirstName
	}
	if customer.LastName == "" {
		customer.LastName = identity.LastName
	}
	if customer.Email == "" {
		customer.Email = identity.Email
	}
	if customer.Phone == "" {
		customer.Phone = identity.Phone
	}
	return customer
}
