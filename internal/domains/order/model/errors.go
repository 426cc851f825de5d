package model

import "errors"

// =====================================================
// CUSTOM ERROR CODES
// =====================================================
const (
	ErrCodeOrderNotFound        = "ORD001"
	ErrCodeOrderCannotCancel    = "ORD002"
	ErrCodeInvalidTransition    = "ORD003"
	ErrCodeCartEmpty            = "ORD004"
	ErrCodeInvalidPaymentMethod = "ORD005"
	ErrCodeInvalidStatus        = "ORD006"
)

// =====================================================
// ERROR DEFINITIONS
// =====================================================
var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderNotCancellable     = errors.New("order cannot be cancelled at this stage")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
)

// =====================================================
// CUSTOM ERROR TYPE
// =====================================================
type OrderError struct {
	Code    string
	Message string
	Err     error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError
func NewOrderError(code, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
