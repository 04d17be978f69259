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

// WithdrawalLister defines the interface that the service must implement.
type WithdrawalLister interface {
	List(ctx context.Context, f models.WithdrawalFilter, page, limit int) (services.WithdrawalPage, error)
}

// NewListWithdrawalsHandler returns an HTTP handler listing withdrawal requests.
// @Summary List withdrawals
// @Description Returns one page of withdrawal requests with totals. Pending requests are listed oldest-first so operators can work the queue FIFO.
// @Tags withdrawals
// @Produce json
// @Param status query string false "Request status"
// @Param user_kind query string false "User kind"
// @Param user_id query string false "User id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} services.WithdrawalPage
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /withdrawals [get]
// @Security BearerAuth
func NewListWithdrawalsHandler(svc WithdrawalLister, tokener AdminTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := adminFromRequest(ctx, r, tokener); !ok {
			respondUnauthorized(w)
			return
		}

		q := r.URL.Query()
		var f models.WithdrawalFilter
		f.Status = models.WithdrawalStatus(q.Get("status"))
		f.UserKind = models.OwnerKind(q.Get("user_kind"))
		if raw := q.Get("user_id"); raw != "" {
			userID, err := uuid.Parse(raw)
			if err != nil {
				respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
				return
			}
			f.UserID = userID
		}

		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		result, err := svc.List(ctx, f, page, limit)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// RegisterListWithdrawalsHandler registers the withdrawal listing route
func RegisterListWithdrawalsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/withdrawals", h)
}
