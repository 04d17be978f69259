package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deliverhub/wallet-ledger/internal/models"
	"github.com/deliverhub/wallet-ledger/internal/services"
)

// NewRefundHandler returns an HTTP handler refunding funds to a wallet.
// @Summary Refund funds
// @Description Credits the balance. If an active hold carries the same reference it is cleared in the same atomic step, so funds are never simultaneously refunded and held.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.FundsRequest true "Refund Request"
// @Success 200 {object} handlers.FundsResponse "Funds refunded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/refund [post]
// @Security BearerAuth
func NewRefundHandler(svc MovementApplier, tokener AdminTokener) http.HandlerFunc {
	return fundsHandler(svc, tokener, services.OpRefund, models.MethodPayment, "Funds refunded")
}

// RegisterRefundHandler registers the route for refunds
func RegisterRefundHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/refund", h)
}
