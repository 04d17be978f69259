package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/deliverhub/wallet-ledger/internal/models"
	"github.com/deliverhub/wallet-ledger/internal/services"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, f models.TransactionFilter, cursor string, limit int) (services.TransactionPage, error)
}

// NewListTransactionsHandler returns an HTTP handler listing ledger rows.
// @Summary List transactions
// @Description Returns one page of the append-only ledger, newest first, with a keyset cursor for the next page. Filterable by owner, direction, method and status.
// @Tags ledger
// @Produce json
// @Param owner_id query string false "Owner id"
// @Param owner_kind query string false "Owner kind"
// @Param direction query string false "credit or debit"
// @Param method query string false "Movement method"
// @Param status query string false "Transaction status"
// @Param cursor query string false "Keyset cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} services.TransactionPage
// @Failure 400 {object} handlers.ErrorResponse "Malformed cursor or owner id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.ErrorResponse "Storage unavailable"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister, tokener AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := adminFromRequest(ctx, r, tokener); !ok {
			respondUnauthorized(w)
			return
		}

		q := r.URL.Query()
		var f models.TransactionFilter
		if raw := q.Get("owner_id"); raw != "" {
			ownerID, err := uuid.Parse(raw)
			if err != nil {
				respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid owner id"})
				return
			}
			f.OwnerID = ownerID
		}
		f.OwnerKind = models.OwnerKind(q.Get("owner_kind"))
		f.Direction = models.Direction(q.Get("direction"))
		f.Method = models.Method(q.Get("method"))
		f.Status = models.TransactionStatus(q.Get("status"))

		limit, _ := strconv.Atoi(q.Get("limit"))

		page, err := svc.ListTransactions(ctx, f, q.Get("cursor"), limit)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}

// RegisterTransactionsHandler registers the ledger listing route
func RegisterTransactionsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/transactions", h)
}
