package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"heritage-backend/internal/domains/pricing"
)

// ========================================
// REQUEST DTOs
// ========================================

// SetItemRequest sets the quantity for a product, adding it to the cart
// when unseen. The catalog supplies name and unit price at add time.
type SetItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (r SetItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID,
			validation.Required.Error("product_id is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Name,
			validation.Length(0, 255),
		),
		validation.Field(&r.Quantity,
			validation.Min(0).Error("quantity must be >= 0"),
		),
	)
}

// ApplyCouponRequest applies a coupon code to the cart
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ApplyCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.Required.Error("code is required"),
			validation.Length(1, 50),
		),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

// CartItemResponse is one priced cart line
type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse is the cart with its computed payment breakdown
type CartResponse struct {
	SessionID  string             `json:"session_id"`
	Items      []CartItemResponse `json:"items"`
	ItemsCount int                `json:"items_count"`
	CouponCode string             `json:"coupon_code,omitempty"`
	Pricing    pricing.Breakdown  `json:"pricing"`
}
