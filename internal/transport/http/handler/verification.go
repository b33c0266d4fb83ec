package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nownpp/wonder-science-hub/internal/application/verification"
	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/validate"
)

// VerificationHandler handles the email code endpoints.
type VerificationHandler struct {
	svc verification.Service
}

func NewVerificationHandler(svc verification.Service) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

// SendCode issues a fresh code for the address and emails it.
func (h *VerificationHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req domain.RequestCodeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, SendCodeEnvelope{Error: "invalid request body"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, SendCodeEnvelope{Error: "a valid email is required"})
		return
	}
	if err := h.svc.RequestCode(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, domain.ErrBadRequest):
			writeJSON(w, http.StatusBadRequest, SendCodeEnvelope{Error: err.Error()})
		case errors.Is(err, domain.ErrTooManyRequests):
			writeJSON(w, http.StatusTooManyRequests, SendCodeEnvelope{Error: err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, SendCodeEnvelope{Error: "failed to send verification code"})
		}
		return
	}
	writeJSON(w, http.StatusOK, SendCodeEnvelope{Success: true, Message: "verification code sent"})
}

// VerifyCode checks a submitted code. Wrong, expired and used codes come back
// as 200 with valid=false; only malformed input and backend failures are
// non-200.
func (h *VerificationHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req domain.RedeemCodeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, VerifyEnvelope{Error: "invalid request body"})
		return
	}
	result, err := h.svc.RedeemCode(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			writeJSON(w, http.StatusBadRequest, VerifyEnvelope{Error: "email and code are required"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, VerifyEnvelope{Error: "failed to verify code"})
		return
	}
	if !result.Valid {
		writeJSON(w, http.StatusOK, VerifyEnvelope{Valid: false, Error: result.Reason})
		return
	}
	writeJSON(w, http.StatusOK, VerifyEnvelope{Valid: true, Message: "code verified"})
}
