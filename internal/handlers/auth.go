package handlers

import (
	"context"
	"net/http"

	"github.com/deliverhub/wallet-ledger/internal/jwt"
	"github.com/deliverhub/wallet-ledger/internal/logger"
)

// AdminTokener defines the token access every admin handler needs.
type AdminTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// adminFromRequest resolves the acting administrator from the request token.
func adminFromRequest(ctx context.Context, r *http.Request, tokener AdminTokener) (*jwt.Claims, bool) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		return nil, false
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		return nil, false
	}
	return claims, true
}

func respondUnauthorized(w http.ResponseWriter) {
	respondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
}
