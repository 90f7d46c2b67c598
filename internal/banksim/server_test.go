package banksim_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cassiomorais/payment-gateway/internal/banksim"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, handler http.Handler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func simRequest(cardNumber string) map[string]any {
	return map[string]any{
		"card_number": cardNumber,
		"expiry_date": "12/2099",
		"currency":    "USD",
		"amount":      1000,
		"cvv":         "123",
	}
}

func TestAuthorize_OddLastDigitAuthorizes(t *testing.T) {
	h := banksim.NewServer(zerolog.Nop()).Handler()

	rec := post(t, h, simRequest("12345678901235"))
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Authorized        bool   `json:"authorized"`
		AuthorizationCode string `json:"authorization_code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Authorized)
	assert.NotEmpty(t, res.AuthorizationCode)
}

func TestAuthorize_EvenLastDigitDeclines(t *testing.T) {
	h := banksim.NewServer(zerolog.Nop()).Handler()

	rec := post(t, h, simRequest("12345678901234"))
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Authorized bool `json:"authorized"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Authorized)
}

func TestAuthorize_ZeroLastDigitSimulatesOutage(t *testing.T) {
	h := banksim.NewServer(zerolog.Nop()).Handler()

	rec := post(t, h, simRequest("12345678901230"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthorize_MalformedExpiryRejected(t *testing.T) {
	h := banksim.NewServer(zerolog.Nop()).Handler()

	body := simRequest("12345678901235")
	body["expiry_date"] = "13/99"

	rec := post(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
