package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidLeadID   = errors.New("INVALID_LEAD_ID")
	ErrLeadNotFound    = errors.New("LEAD_NOT_FOUND")
	ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")
)
