package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
	"github.com/deliverhub/wallet-ledger/internal/services"
)

// FundsRequest represents the JSON body for hold, release and refund calls
// swagger:model FundsRequest
type FundsRequest struct {
	// Owner of the wallet
	// required: true
	OwnerID string `json:"owner_id"`

	// Owner kind: customer, driver, vendor or marketer
	// required: true
	OwnerKind string `json:"owner_kind"`

	// Amount, positive magnitude
	// required: true
	// example: 30.0
	Amount decimal.Decimal `json:"amount"`

	// Reference tagging the hold so a later release or refund can clear it
	Reference string `json:"reference,omitempty"`

	// Reason, recorded in the ledger description (refund only)
	Reason string `json:"reason,omitempty"`

	// Idempotency key; replays return the original transaction
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// FundsResponse represents a successful hold/release/refund response
// swagger:model FundsResponse
type FundsResponse struct {
	// Recorded ledger transaction
	Transaction models.Transaction `json:"transaction"`

	// Wallet state after the operation is not included; read it back via GET wallet
	Message string `json:"message"`
}

// fundsHandler is the shared shape of the hold, release and refund handlers.
func fundsHandler(svc MovementApplier, tokener AdminTokener, op services.Op, method models.Method, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := adminFromRequest(ctx, r, tokener); !ok {
			respondUnauthorized(w)
			return
		}

		var req FundsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode funds request", "op", op, "error", err)
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		ownerID, err := uuid.Parse(req.OwnerID)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid owner id"})
			return
		}

		tx, err := svc.Apply(ctx, services.ApplyInput{
			OwnerID:        ownerID,
			OwnerKind:      models.OwnerKind(req.OwnerKind),
			Amount:         req.Amount,
			Op:             op,
			Method:         method,
			Description:    req.Reason,
			Reference:      req.Reference,
			IdempotencyKey: req.IdempotencyKey,
		})
		if err != nil {
			logger.Log.Errorw("funds operation failed",
				"op", op, "owner_id", ownerID, "amount", req.Amount, "error", err)
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, FundsResponse{Transaction: tx, Message: message})
	}
}

// NewHoldHandler returns an HTTP handler reserving funds against a pending obligation.
// @Summary Hold funds
// @Description Moves the amount from availability into on-hold. Balance is unchanged; available decreases.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.FundsRequest true "Hold Request"
// @Success 200 {object} handlers.FundsResponse "Funds held"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient funds"
// @Router /wallet/hold [post]
// @Security BearerAuth
func NewHoldHandler(svc MovementApplier, tokener AdminTokener) http.HandlerFunc {
	return fundsHandler(svc, tokener, services.OpHold, models.MethodEscrow, "Funds held")
}

// RegisterHoldHandler registers the route for holding funds
func RegisterHoldHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/hold", h)
}
