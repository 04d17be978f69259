package middlewares

import (
	"context"
	"net/http"

	"github.com/deliverhub/wallet-ledger/internal/jwt"
	"github.com/deliverhub/wallet-ledger/internal/logger"
)

type adminKey struct{}

// AdminTokener extracts and parses the operator token carried by a request.
type AdminTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AdminFromContext returns the admin claims stashed by AdminAuthMiddleware.
func AdminFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(adminKey{}).(*jwt.Claims)
	return claims, ok
}

// AdminAuthMiddleware gates a route group behind operator JWT validation and
// makes the admin claims available downstream via AdminFromContext.
func AdminAuthMiddleware(tokener AdminTokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("admin authorization rejected", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("admin authorization rejected", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, adminKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
