package controller

import (
	"encoding/json"
	"net/http"

	"github.com/cassiomorais/payment-gateway/internal/domain/payment"
	"github.com/cassiomorais/payment-gateway/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PaymentController handles payment-related HTTP requests.
type PaymentController struct {
	paymentService *service.PaymentService
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// ProcessPayment handles POST /payment
func (h *PaymentController) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req payment.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	p, err := h.paymentService.ProcessPayment(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromPayment(p))
}

// GetPayment handles GET /payment/{id}. A malformed id is indistinguishable
// from an unknown one to the caller: both are 404.
func (h *PaymentController) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Not found"})
		return
	}

	p, err := h.paymentService.GetPaymentByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromPayment(p))
}
