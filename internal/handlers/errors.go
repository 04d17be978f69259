package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deliverhub/wallet-ledger/internal/services"
)

// ErrorResponse is the JSON error body shared by all handlers
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: insufficient funds
	Error string `json:"error"`
}

// statusFor maps the service error taxonomy onto HTTP statuses. Validation
// errors are 400, business decisions the operator must reconsider are 409,
// transient storage faults are 503.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidUserModel),
		errors.Is(err, services.ErrInvalidBankDetails),
		errors.Is(err, services.ErrInvalidCursor):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrWithdrawalNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrAlreadyProcessed):
		return http.StatusConflict
	case errors.Is(err, services.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageFor keeps operator-facing messages actionable for the decision
// errors and generic for everything else.
func messageFor(err error) string {
	switch {
	case errors.Is(err, services.ErrInsufficientFunds):
		return "insufficient balance: available funds changed since submission"
	case errors.Is(err, services.ErrAlreadyProcessed):
		return "request already processed: refresh and review its current state"
	case errors.Is(err, services.ErrInvalidAmount):
		return "amount must be a positive number"
	case errors.Is(err, services.ErrInvalidUserModel):
		return "unsupported owner kind"
	case errors.Is(err, services.ErrInvalidBankDetails):
		return "bank details are incomplete"
	case errors.Is(err, services.ErrWithdrawalNotFound):
		return "withdrawal request not found"
	case errors.Is(err, services.ErrInvalidCursor):
		return "malformed cursor: restart from the first page"
	case errors.Is(err, services.ErrStoreUnavailable):
		return "storage temporarily unavailable, retry with the same request"
	default:
		return "internal error"
	}
}

func respondError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(err))
	json.NewEncoder(w).Encode(ErrorResponse{Error: messageFor(err)})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
