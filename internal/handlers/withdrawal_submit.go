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

// WithdrawalSubmitter defines the interface that the service must implement.
type WithdrawalSubmitter interface {
	Submit(ctx context.Context, in services.SubmitWithdrawalInput) (models.WithdrawalRequest, error)
}

// SubmitWithdrawalRequest represents the JSON body for a new withdrawal request
// swagger:model SubmitWithdrawalRequest
type SubmitWithdrawalRequest struct {
	// Requesting user
	// required: true
	UserID string `json:"user_id"`

	// User kind: driver, vendor or marketer
	// required: true
	UserKind string `json:"user_kind"`

	// Amount, fixed at submission
	// required: true
	// example: 50.0
	Amount decimal.Decimal `json:"amount"`

	// Payout destination
	// required: true
	BankDetails models.BankDetails `json:"bank_details"`

	// Free-form notes from the requester
	Notes string `json:"notes,omitempty"`

	// Processing fee, recorded but not deducted from the amount
	ProcessingFee decimal.Decimal `json:"processing_fee"`
}

// NewSubmitWithdrawalHandler returns an HTTP handler creating a pending withdrawal request.
// @Summary Submit withdrawal
// @Description Creates a new pending withdrawal request for operator review.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body handlers.SubmitWithdrawalRequest true "Submission"
// @Success 201 {object} handlers.WithdrawalResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, kind or bank details"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /withdrawals [post]
// @Security BearerAuth
func NewSubmitWithdrawalHandler(svc WithdrawalSubmitter, tokener AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := adminFromRequest(ctx, r, tokener); !ok {
			respondUnauthorized(w)
			return
		}

		var req SubmitWithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode submission request", "error", err)
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		created, err := svc.Submit(ctx, services.SubmitWithdrawalInput{
			UserID:        userID,
			UserKind:      models.OwnerKind(req.UserKind),
			Amount:        req.Amount,
			BankDetails:   req.BankDetails,
			Notes:         req.Notes,
			ProcessingFee: req.ProcessingFee,
		})
		if err != nil {
			logger.Log.Errorw("withdrawal submission failed", "user_id", userID, "error", err)
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, WithdrawalResponse{Request: created})
	}
}

// RegisterSubmitWithdrawalHandler registers the submission route
func RegisterSubmitWithdrawalHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/withdrawals", h)
}
