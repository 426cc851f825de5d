package model

import "errors"

// =====================================================
// CUSTOM ERROR CODES
// =====================================================
const (
	ErrCodeValidationFailed = "CHK001"
	ErrCodeCartEmpty        = "CHK002"
	ErrCodeSubmitCancelled  = "CHK003"
	ErrCodeSubmitFailed     = "CHK004"
)

// =====================================================
// ERROR DEFINITIONS
// =====================================================
var (
	// ErrValidationFailed signals that the field→message map carries the
	// real information; no order may be built until it is empty.
	ErrValidationFailed = errors.New("checkout validation failed")

	// ErrSubmitCancelled: the caller went away before the commit point.
	// No order exists. At-most-once, no automatic retry.
	ErrSubmitCancelled = errors.New("checkout submission cancelled")
)
