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

// WithdrawalApprover defines the interface that the service must implement.
type WithdrawalApprover interface {
	Approve(ctx context.Context, requestID, adminID uuid.UUID, transactionRef, notes string) (models.WithdrawalRequest, error)
}

// ApproveWithdrawalRequest represents the JSON body for an approval
// swagger:model ApproveWithdrawalRequest
type ApproveWithdrawalRequest struct {
	// External transaction reference (e.g. bank reference); defaults to the settlement transaction id
	TransactionRef string `json:"transaction_ref,omitempty"`

	// Operator notes
	Notes string `json:"notes,omitempty"`
}

// WithdrawalResponse represents a withdrawal request after a decision
// swagger:model WithdrawalResponse
type WithdrawalResponse struct {
	Request models.WithdrawalRequest `json:"request"`
}

// NewApproveWithdrawalHandler returns an HTTP handler approving a withdrawal.
// @Summary Approve withdrawal
// @Description Debits the owner's wallet and moves the request to approved in one atomic unit. Available funds are checked at approval time; a request that is no longer pending returns 409.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param request body handlers.ApproveWithdrawalRequest true "Approval"
// @Success 200 {object} handlers.WithdrawalResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Unknown request"
// @Failure 409 {object} handlers.ErrorResponse "Already processed or insufficient balance"
// @Router /withdrawals/{id}/approve [post]
// @Security BearerAuth
func NewApproveWithdrawalHandler(svc WithdrawalApprover, tokener AdminTokener) http.HandlerFunc {
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

		var req ApproveWithdrawalRequest
		if r.Body != nil {
			// Body is optional for approvals with no ref or notes.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		updated, err := svc.Approve(ctx, requestID, claims.AdminID, req.TransactionRef, req.Notes)
		if err != nil {
			logger.Log.Errorw("withdrawal approval failed",
				"request_id", requestID, "admin_id", claims.AdminID, "error", err)
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, WithdrawalResponse{Request: updated})
	}
}

// RegisterApproveWithdrawalHandler registers the approval route
func RegisterApproveWithdrawalHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/withdrawals/{id}/approve", h)
}
