// Package banksim is a stand-in for the acquiring bank, used for local runs
// and manual testing of the gateway.
//
// Outcomes are deterministic on the card number's last digit: odd digits
// authorize, even digits decline, and 0 simulates a bank outage.
package banksim

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var expiryDateRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{4}$`)

type authorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

type authorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

type Server struct {
	logger zerolog.Logger
}

func NewServer(logger zerolog.Logger) *Server {
	return &Server{logger: logger.With().Str("component", "banksim").Logger()}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Post("/payments", s.authorize)
	return r
}

func (s *Server) authorize(w http.ResponseWriter, r *http.Request) {
	var req authorizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	if req.CardNumber == "" || !expiryDateRe.MatchString(req.ExpiryDate) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "missing or malformed payment details"})
		return
	}

	last := req.CardNumber[len(req.CardNumber)-1]
	switch {
	case last == '0':
		s.logger.Warn().Msg("Simulating bank outage")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "service unavailable"})
	case (last-'0')%2 == 1:
		res := authorizationResponse{Authorized: true, AuthorizationCode: uuid.New().String()}
		s.logger.Info().Str("authorization_code", res.AuthorizationCode).Msg("Payment authorized")
		writeJSON(w, http.StatusOK, res)
	default:
		s.logger.Info().Msg("Payment declined")
		writeJSON(w, http.StatusOK, authorizationResponse{Authorized: false})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
