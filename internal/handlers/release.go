package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deliverhub/wallet-ledger/internal/models"
	"github.com/deliverhub/wallet-ledger/internal/services"
)

// NewReleaseHandler returns an HTTP handler releasing previously held funds.
// @Summary Release held funds
// @Description Returns held funds to the spendable pool. Balance is unchanged; available increases.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.FundsRequest true "Release Request"
// @Success 200 {object} handlers.FundsResponse "Funds released"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Release exceeds held funds"
// @Router /wallet/release [post]
// @Security BearerAuth
func NewReleaseHandler(svc MovementApplier, tokener AdminTokener) http.HandlerFunc {
	return fundsHandler(svc, tokener, services.OpRelease, models.MethodEscrow, "Funds released")
}

// RegisterReleaseHandler registers the route for releasing held funds
func RegisterReleaseHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/release", h)
}
