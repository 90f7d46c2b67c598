package payment

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	cardNumberRe     = regexp.MustCompile(`^[0-9]{14,19}$`)
	cvvRe            = regexp.MustCompile(`^[0-9]{3,4}$`)
	currencyFormatRe = regexp.MustCompile(`^[A-Z]{3}$`)
)

// supportedCurrencies is the fixed set of currencies the gateway accepts.
var supportedCurrencies = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"GBP": {},
}

// violationMessages maps field/tag pairs to the messages returned to callers.
var violationMessages = map[string]string{
	"card_number/required":        "Card number is required",
	"card_number/card_number":     "Card number must be between 14 and 19 digits",
	"expiry_month/required":       "Expiry month is required",
	"expiry_month/min":            "Expiry month must be between 1 and 12",
	"expiry_month/max":            "Expiry month must be between 1 and 12",
	"expiry_year/required":        "Expiry year is required",
	"expiry_year/min":             "Expiry year must be between 1 and 9999",
	"expiry_year/max":             "Expiry year must be between 1 and 9999",
	"currency/required":           "Currency is required",
	"currency/currency_format":    "Currency must be a 3 letter code",
	"currency/supported_currency": "Currency code is not supported",
	"amount/required":             "Amount is required",
	"amount/gt":                   "Amount must be greater than zero",
	"cvv/required":                "CVV is required",
	"cvv/cvv":                     "CVV must be a 3 or 4 digit number",
	"expiry/expiry_future":        "Expiry year and month must be valid and in the future",
}

// Validator decides whether an inbound PaymentRequest may proceed to
// authorization. It never mutates its input and performs no I/O.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator with the gateway's field and cross-field
// rules registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("card_number", func(fl validator.FieldLevel) bool {
		return cardNumberRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("cvv", func(fl validator.FieldLevel) bool {
		return cvvRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("currency_format", func(fl validator.FieldLevel) bool {
		return currencyFormatRe.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(validatePaymentRequest, PaymentRequest{})

	return &Validator{validate: v}
}

// Validate returns the accepted value for a well-formed request, or the
// non-empty set of violations that rejected it.
func (v *Validator) Validate(req PaymentRequest) (*ValidPaymentRequest, Violations) {
	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			violations := make(Violations, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				violations = append(violations, Violation{
					Field:   fe.Field(),
					Message: messageFor(fe),
				})
			}
			return nil, violations
		}
		return nil, Violations{{Field: "request", Message: err.Error()}}
	}

	return &ValidPaymentRequest{
		CardNumber:  *req.CardNumber,
		ExpiryMonth: *req.ExpiryMonth,
		ExpiryYear:  *req.ExpiryYear,
		Currency:    *req.Currency,
		Amount:      *req.Amount,
		CVV:         *req.CVV,
	}, nil
}

// validatePaymentRequest holds the cross-field rules.
//
// The expiry-future rule is skipped when month or year is absent; the
// presence check already reports those. A calendar-invalid month/year
// combination counts as a failure of this same rule, alongside whatever the
// range checks reported.
//
// The supported-currency rule only runs once the 3-letter format rule passes,
// so a blank or malformed currency fails the format rule alone.
func validatePaymentRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(PaymentRequest)

	if req.ExpiryMonth != nil && req.ExpiryYear != nil {
		if !expiryInFuture(*req.ExpiryYear, *req.ExpiryMonth, time.Now()) {
			sl.ReportError(req.ExpiryMonth, "expiry", "ExpiryMonth", "expiry_future", "")
		}
	}

	if req.Currency != nil && currencyFormatRe.MatchString(*req.Currency) {
		if _, ok := supportedCurrencies[*req.Currency]; !ok {
			sl.ReportError(req.Currency, "currency", "Currency", "supported_currency", "")
		}
	}
}

// expiryInFuture reports whether (year, month) forms a valid calendar month
// strictly after the current one.
func expiryInFuture(year, month int, now time.Time) bool {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return false
	}
	if year != now.Year() {
		return year > now.Year()
	}
	return month > int(now.Month())
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := violationMessages[fe.Field()+"/"+fe.Tag()]; ok {
		return msg
	}
	return "is invalid"
}
