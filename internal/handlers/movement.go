package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
	"github.com/deliverhub/wallet-ledger/internal/services"
)

// MovementApplier defines the interface that the service must implement.
type MovementApplier interface {
	Apply(ctx context.Context, in services.ApplyInput) (models.Transaction, error)
}

// MovementRequest represents the JSON body for a manual credit or debit
// swagger:model MovementRequest
type MovementRequest struct {
	// Owner of the wallet being mutated
	// required: true
	OwnerID string `json:"owner_id"`

	// Owner kind: customer, driver, vendor or marketer
	// required: true
	OwnerKind string `json:"owner_kind"`

	// Amount, positive magnitude
	// required: true
	// example: 50.0
	Amount decimal.Decimal `json:"amount"`

	// Direction: credit or debit
	// required: true
	Direction string `json:"direction"`

	// Method: agent, card, transfer, payment, escrow, reward, external_rail, withdrawal
	// required: true
	Method string `json:"method"`

	// Description shown in the ledger
	Description string `json:"description"`

	// External reference (e.g. bank reference)
	Reference string `json:"reference,omitempty"`

	// Opaque metadata bag
	Metadata map[string]string `json:"metadata,omitempty"`

	// Idempotency key; replays return the original transaction
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// MovementResponse represents a successful movement response
// swagger:model MovementResponse
type MovementResponse struct {
	// Recorded ledger transaction
	Transaction models.Transaction `json:"transaction"`
}

// NewMovementHandler returns an HTTP handler applying a manual credit or debit.
// @Summary Credit or debit a wallet
// @Description Applies exactly one money movement to an owner's wallet and appends the ledger row. Replays with the same idempotency key return the original transaction.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.MovementRequest true "Movement Request"
// @Success 200 {object} handlers.MovementResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or owner kind"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient funds"
// @Router /wallet/movement [post]
// @Security BearerAuth
func NewMovementHandler(svc MovementApplier, tokener AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := adminFromRequest(ctx, r, tokener)
		if !ok {
			respondUnauthorized(w)
			return
		}

		var req MovementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode movement request", "error", err)
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		ownerID, err := uuid.Parse(req.OwnerID)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid owner id"})
			return
		}

		var op services.Op
		switch req.Direction {
		case string(models.DirectionCredit):
			op = services.OpCredit
		case string(models.DirectionDebit):
			op = services.OpDebit
		default:
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Direction must be credit or debit"})
			return
		}

		tx, err := svc.Apply(ctx, services.ApplyInput{
			OwnerID:        ownerID,
			OwnerKind:      models.OwnerKind(req.OwnerKind),
			Amount:         req.Amount,
			Op:             op,
			Method:         models.Method(req.Method),
			Description:    req.Description,
			Reference:      req.Reference,
			Metadata:       req.Metadata,
			IdempotencyKey: req.IdempotencyKey,
		})
		if err != nil {
			logger.Log.Errorw("movement failed",
				"owner_id", ownerID, "direction", req.Direction, "amount", req.Amount,
				"admin_id", claims.AdminID, "error", err)
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, MovementResponse{Transaction: tx})
	}
}

// RegisterMovementHandler registers the route for manual credits and debits
func RegisterMovementHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/movement", h)
}
