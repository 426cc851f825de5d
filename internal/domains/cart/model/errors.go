package model

import "errors"

// =====================================================
// CUSTOM ERROR CODES
// =====================================================
const (
	ErrCodeCartNotFound   = "CRT001"
	ErrCodeCartEmpty      = "CRT002"
	ErrCodeInvalidRequest = "CRT003"
	ErrCodeStoreFailure   = "CRT004"
)

// =====================================================
// ERROR DEFINITIONS
// =====================================================
var (
	ErrCartNotFound = errors.New("cart not found")
	ErrCartEmpty    = errors.New("cart is empty")
)
