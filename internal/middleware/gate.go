package middleware

import (
	"net/http"
	"strings"

	"blogger/internal/auth"
	"blogger/internal/logger"
	"blogger/internal/reqctx"
	"blogger/internal/utils/helpers"

	"go.uber.org/zap"
)

// RequireToken lets a request through only when the verifier accepts the
// token in the Authorization header ("Bearer <token>").
func RequireToken(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				logger.WithCtx(r.Context()).Warn("gate: token missing", zap.String("path", r.URL.Path))
				helpers.JSON(w, http.StatusUnauthorized, helpers.ErrorBody{Error: "Authentication token is required"})
				return
			}

			p, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("gate: token rejected", zap.String("path", r.URL.Path), zap.Error(err))
				helpers.JSON(w, http.StatusForbidden, helpers.ErrorBody{Error: "Invalid token"})
				return
			}

			ctx := r.Context()
			if p.UserID != 0 {
				ctx = reqctx.WithUserID(ctx, p.UserID)
			}
			if p.Role != "" {
				ctx = reqctx.WithRole(ctx, p.Role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken returns the second space-separated word of the header.
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
