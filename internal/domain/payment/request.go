package payment

import (
	"fmt"
	"strings"
)

// PaymentRequest is the untrusted inbound shape of POST /payment. Fields are
// pointers so that an absent field is distinguishable from a zero value and
// reported as its own violation.
type PaymentRequest struct {
	CardNumber  *string `json:"card_number" validate:"required,card_number"`
	ExpiryMonth *int    `json:"expiry_month" validate:"required,min=1,max=12"`
	ExpiryYear  *int    `json:"expiry_year" validate:"required,min=1,max=9999"`
	Currency    *string `json:"currency" validate:"required,currency_format"`
	Amount      *int64  `json:"amount" validate:"required,gt=0"`
	CVV         *string `json:"cvv" validate:"required,cvv"`
}

// ValidPaymentRequest carries the six fields of a request that passed
// validation. It is only ever produced by Validator.Validate.
type ValidPaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

// ExpiryString renders the expiry as MM/YYYY, the format the acquiring bank
// expects, with the month zero-padded to two digits.
func (r *ValidPaymentRequest) ExpiryString() string {
	return fmt.Sprintf("%02d/%04d", r.ExpiryMonth, r.ExpiryYear)
}

// Violation is a single field-level or cross-field validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is a non-empty set of violations. It implements error so the
// service layer can return it directly and the controller can map it to a
// Rejected response.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Field + ": " + violation.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
