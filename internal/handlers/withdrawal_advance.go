package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
)

// WithdrawalAdvancer defines the interface that the service must implement.
type WithdrawalAdvancer interface {
	Advance(ctx context.Context, requestID, adminID uuid.UUID, to models.WithdrawalStatus) (models.WithdrawalRequest, error)
}

// AdvanceWithdrawalRequest represents the JSON body for a payout pipeline override
// swagger:model AdvanceWithdrawalRequest
type AdvanceWithdrawalRequest struct {
	// Target status: processing, completed or failed
	// required: true
	Status string `json:"status"`
}

// NewAdvanceWithdrawalHandler returns an HTTP handler moving an approved request along the payout pipeline.
// @Summary Advance withdrawal
// @Description Manual ops override: approved -> processing -> completed or failed. Terminal states never transition again.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param request body handlers.AdvanceWithdrawalRequest true "Target status"
// @Success 200 {object} handlers.WithdrawalResponse
// @Failure 400 {object} handlers.ErrorResponse "Unknown target status"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Unknown request"
// @Failure 409 {object} handlers.ErrorResponse "Transition not permitted"
// @Router /withdrawals/{id}/status [post]
// @Security BearerAuth
func NewAdvanceWithdrawalHandler(svc WithdrawalAdvancer, tokener AdminTokener) http.HandlerFunc {
	allowed := map[models.WithdrawalStatus]struct{}{
		models.WithdrawalProcessing: {},
		models.WithdrawalCompleted:  {},
		models.WithdrawalFailed:     {},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := adminFromRequest(ctx, r, tokener)
		if !ok {
			respondUnauthorized(w)
			return
		}

		requestID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request id"})
			return
		}

		var req AdvanceWithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode advance request", "error", err)
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		to := models.WithdrawalStatus(req.Status)
		if _, ok := allowed[to]; !ok {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Status must be processing, completed or failed"})
			return
		}

		updated, err := svc.Advance(ctx, requestID, claims.AdminID, to)
		if err != nil {
			logger.Log.Errorw("withdrawal advance failed",
				"request_id", requestID, "admin_id", claims.AdminID, "to", to, "error", err)
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, WithdrawalResponse{Request: updated})
	}
}

// RegisterAdvanceWithdrawalHandler registers the payout override route
func RegisterAdvanceWithdrawalHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/withdrawals/{id}/status", h)
}
