package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deliverhub/wallet-ledger/internal/models"
	"github.com/deliverhub/wallet-ledger/internal/services"
)

// WalletReader defines the interface that the service must implement.
type WalletReader interface {
	GetWallet(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (models.Wallet, error)
	Reconcile(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (services.Reconciliation, error)
}

// WalletResponse represents a wallet read
// swagger:model WalletResponse
type WalletResponse struct {
	OwnerID       uuid.UUID        `json:"owner_id"`
	OwnerKind     models.OwnerKind `json:"owner_kind"`
	Balance       decimal.Decimal  `json:"balance"`
	OnHold        decimal.Decimal  `json:"on_hold"`
	Available     decimal.Decimal  `json:"available"`
	LoyaltyPoints int64            `json:"loyalty_points"`
}

// NewGetWalletHandler returns an HTTP handler reading one owner's wallet.
// @Summary Get wallet
// @Description Returns balance, on-hold and available funds. An owner who never moved money gets a zero wallet, not a 404.
// @Tags wallet
// @Produce json
// @Param ownerKind path string true "Owner kind"
// @Param ownerId path string true "Owner id"
// @Success 200 {object} handlers.WalletResponse
// @Failure 400 {object} handlers.ErrorResponse "Unsupported owner kind"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/{ownerKind}/{ownerId} [get]
// @Security BearerAuth
func NewGetWalletHandler(svc WalletReader, tokener AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := adminFromRequest(ctx, r, tokener); !ok {
			respondUnauthorized(w)
			return
		}

		ownerID, err := uuid.Parse(chi.URLParam(r, "ownerId"))
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid owner id"})
			return
		}

		wallet, err := svc.GetWallet(ctx, ownerID, models.OwnerKind(chi.URLParam(r, "ownerKind")))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, WalletResponse{
			OwnerID:       wallet.OwnerID,
			OwnerKind:     wallet.OwnerKind,
			Balance:       wallet.Balance,
			OnHold:        wallet.OnHold,
			Available:     wallet.Available(),
			LoyaltyPoints: wallet.LoyaltyPoints,
		})
	}
}

// NewReconcileHandler returns an HTTP handler replaying the owner's ledger.
// @Summary Reconcile wallet
// @Description Replays all completed ledger rows for the owner and compares the sum against the stored balance.
// @Tags wallet
// @Produce json
// @Param ownerKind path string true "Owner kind"
// @Param ownerId path string true "Owner id"
// @Success 200 {object} services.Reconciliation
// @Failure 400 {object} handlers.ErrorResponse "Unsupported owner kind"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/{ownerKind}/{ownerId}/reconcile [get]
// @Security BearerAuth
func NewReconcileHandler(svc WalletReader, tokener AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := adminFromRequest(ctx, r, tokener); !ok {
			respondUnauthorized(w)
			return
		}

		ownerID, err := uuid.Parse(chi.URLParam(r, "ownerId"))
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid owner id"})
			return
		}

		rec, err := svc.Reconcile(ctx, ownerID, models.OwnerKind(chi.URLParam(r, "ownerKind")))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, rec)
	}
}

// RegisterWalletHandlers registers the wallet read routes
func RegisterWalletHandlers(r chi.Router, get, reconcile http.HandlerFunc) {
	r.Get("/wallet/{ownerKind}/{ownerId}", get)
	r.Get("/wallet/{ownerKind}/{ownerId}/reconcile", reconcile)
}
