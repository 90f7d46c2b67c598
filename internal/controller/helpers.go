package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	domainErrors "github.com/cassiomorais/payment-gateway/internal/domain/errors"
	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError is the single place where domain faults become HTTP responses.
// Response bodies never carry internal detail; unknown faults are logged in
// full and answered with the generic message.
func writeError(w http.ResponseWriter, err error) {
	var violations payment.Violations
	if errors.As(err, &violations) {
		writeJSON(w, http.StatusBadRequest, RejectedResponse{Status: payment.StatusRejected})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrPaymentNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Not found"})
	case errors.Is(err, domainErrors.ErrBankUnavailable):
		log.Error().Err(err).Msg("Acquiring bank unavailable")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Unable to process the request due to bank service issue"})
	default:
		log.Error().Err(err).Msg("Unhandled error in handler")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Something went wrong"})
	}
}
