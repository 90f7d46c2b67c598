package errors

import "errors"

var (
	// Payment errors
	ErrPaymentNotFound = errors.New("payment not found")

	// Acquiring bank errors
	ErrBankUnavailable = errors.New("bank service unavailable")
)
