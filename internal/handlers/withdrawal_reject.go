package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
)

// WithdrawalRejecter defines the interface that the service must implement.
type WithdrawalRejecter interface {
	Reject(ctx context.Context, requestID, adminID uuid.UUID, reason string) (models.WithdrawalRequest, error)
}

// RejectWithdrawalRequest represents the JSON body for a rejection
// swagger:model RejectWithdrawalRequest
type RejectWithdrawalRequest struct {
	// Reason shown to the requesting user
	// required: true
	Reason string `json:"reason"`
}

// NewRejectWithdrawalHandler returns an HTTP handler rejecting a withdrawal.
// @Summary Reject withdrawal
// @Description Moves a pending request to rejected. The owner's wallet is never touched on this path.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param request body handlers.RejectWithdrawalRequest true "Rejection"
// @Success 200 {object} handlers.WithdrawalResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing reason"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Unknown request"
// @Failure 409 {object} handlers.ErrorResponse "Already processed"
// @Router /withdrawals/{id}/reject [post]
// @Security BearerAuth
func NewRejectWithdrawalHandler(svc WithdrawalRejecter, tokener AdminTokener) http.HandlerFunc {
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

		var req RejectWithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode rejection request", "error", err)
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}
		if strings.TrimSpace(req.Reason) == "" {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Rejection reason is required"})
			return
		}

		updated, err := svc.Reject(ctx, requestID, claims.AdminID, req.Reason)
		if err != nil {
			logger.Log.Errorw("withdrawal rejection failed",
				"request_id", requestID, "admin_id", claims.AdminID, "error", err)
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, WithdrawalResponse{Request: updated})
	}
}

// RegisterRejectWithdrawalHandler registers the rejection route
func RegisterRejectWithdrawalHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/withdrawals/{id}/reject", h)
}
