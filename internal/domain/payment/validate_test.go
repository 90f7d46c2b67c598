package payment_test

import (
	"testing"
	"time"

	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validRequest() payment.PaymentRequest {
	return payment.PaymentRequest{
		CardNumber:  ptr("12345678901234"),
		ExpiryMonth: ptr(12),
		ExpiryYear:  ptr(2099),
		Currency:    ptr("USD"),
		Amount:      ptr(int64(1000)),
		CVV:         ptr("123"),
	}
}

func violatedFields(v payment.Violations) map[string]bool {
	fields := make(map[string]bool, len(v))
	for _, violation := range v {
		fields[violation.Field] = true
	}
	return fields
}

func TestValidate_AllFieldsValid(t *testing.T) {
	valid, violations := payment.NewValidator().Validate(validRequest())
	require.Nil(t, violations)
	require.NotNil(t, valid)
	assert.Equal(t, "12345678901234", valid.CardNumber)
	assert.Equal(t, "12/2099", valid.ExpiryString())
}

func TestValidate_MissingFields(t *testing.T) {
	valid, violations := payment.NewValidator().Validate(payment.PaymentRequest{})
	require.Nil(t, valid)
	require.NotEmpty(t, violations)

	fields := violatedFields(violations)
	for _, f := range []string{"card_number", "expiry_month", "expiry_year", "currency", "amount", "cvv"} {
		assert.True(t, fields[f], "expected violation for %s", f)
	}
	// Presence checks alone; the expiry-future rule is skipped when the
	// fields are absent.
	assert.False(t, fields["expiry"])
}

func TestValidate_CardNumberTooShort(t *testing.T) {
	req := validRequest()
	req.CardNumber = ptr("123")

	_, violations := payment.NewValidator().Validate(req)
	assert.True(t, violatedFields(violations)["card_number"])
}

func TestValidate_CardNumberNonNumeric(t *testing.T) {
	req := validRequest()
	req.CardNumber = ptr("1234567890abcd")

	_, violations := payment.NewValidator().Validate(req)
	assert.True(t, violatedFields(violations)["card_number"])
}

func TestValidate_CardNumberBoundaries(t *testing.T) {
	v := payment.NewValidator()

	req := validRequest()
	req.CardNumber = ptr("1234567890123456789") // 19 digits
	_, violations := v.Validate(req)
	assert.Nil(t, violations)

	req.CardNumber = ptr("12345678901234567890") // 20 digits
	_, violations = v.Validate(req)
	assert.True(t, violatedFields(violations)["card_number"])
}

func TestValidate_ExpiryMonthOutOfRange(t *testing.T) {
	req := validRequest()
	req.ExpiryMonth = ptr(13)

	_, violations := payment.NewValidator().Validate(req)
	assert.True(t, violatedFields(violations)["expiry_month"])
}

func TestValidate_ExpiryYearOutOfRange(t *testing.T) {
	req := validRequest()
	req.ExpiryYear = ptr(99999)

	_, violations := payment.NewValidator().Validate(req)
	assert.True(t, violatedFields(violations)["expiry_year"])
}

func TestValidate_ExpiryDateInThePast(t *testing.T) {
	req := validRequest()
	req.ExpiryMonth = ptr(1)
	req.ExpiryYear = ptr(2020)

	_, violations := payment.NewValidator().Validate(req)
	assert.True(t, violatedFields(violations)["expiry"])
}

func TestValidate_ExpiryCurrentMonthFails(t *testing.T) {
	now := time.Now()
	req := validRequest()
	req.ExpiryMonth = ptr(int(now.Month()))
	req.ExpiryYear = ptr(now.Year())

	_, violations := payment.NewValidator().Validate(req)
	assert.True(t, violatedFields(violations)["expiry"], "expiry must be strictly after the current month")
}

func TestValidate_CurrencyFormatInvalid(t *testing.T) {
	req := validRequest()
	req.Currency = ptr("1ab")

	_, violations := payment.NewValidator().Validate(req)
	fields := violatedFields(violations)
	assert.True(t, fields["currency"])

	// Malformed currency fails the format rule only, never the support rule.
	for _, violation := range violations {
		if violation.Field == "currency" {
			assert.Equal(t, "Currency must be a 3 letter code", violation.Message)
		}
	}
}

func TestValidate_CurrencyNotSupported(t *testing.T) {
	req := validRequest()
	req.Currency = ptr("ABC")

	_, violations := payment.NewValidator().Validate(req)
	require.Len(t, violations, 1)
	assert.Equal(t, "currency", violations[0].Field)
	assert.Equal(t, "Currency code is not supported", violations[0].Message)
}

func TestValidate_AmountNotPositive(t *testing.T) {
	v := payment.NewValidator()

	req := validRequest()
	req.Amount = ptr(int64(0))
	_, violations := v.Validate(req)
	assert.True(t, violatedFields(violations)["amount"])

	req.Amount = ptr(int64(-100))
	_, violations = v.Validate(req)
	assert.True(t, violatedFields(violations)["amount"])
}

func TestValidate_CVVLengthInvalid(t *testing.T) {
	req := validRequest()
	req.CVV = ptr("12345")

	_, violations := payment.NewValidator().Validate(req)
	assert.True(t, violatedFields(violations)["cvv"])
}

func TestValidate_CVVNonNumeric(t *testing.T) {
	req := validRequest()
	req.CVV = ptr("abc")

	_, violations := payment.NewValidator().Validate(req)
	assert.True(t, violatedFields(violations)["cvv"])
}

func TestValidate_FourDigitCVV(t *testing.T) {
	req := validRequest()
	req.CVV = ptr("1234")

	_, violations := payment.NewValidator().Validate(req)
	assert.Nil(t, violations)
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	req := validRequest()
	card := *req.CardNumber

	_, _ = payment.NewValidator().Validate(req)
	assert.Equal(t, card, *req.CardNumber)
}
