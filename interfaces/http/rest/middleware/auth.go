package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"cosylinks-backend/infrastructure/config"
	"cosylinks-backend/pkg/auth"
	"cosylinks-backend/pkg/common"
)

// Authenticate guards mutating endpoints with JWT bearer validation.
// When auth is disabled by configuration (the development default),
// requests pass through untouched.
func Authenticate(cfg *config.Config, logger *zap.Logger) func(next http.Handler) http.Handler {
	if !cfg.EnableAuth {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	validator, err := auth.NewJWTValidator(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		logger.Error("failed to initialize JWT validator, rejecting all mutations", zap.Error(err))
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				common.RespondError(w, http.StatusUnauthorized,
					common.StandardErrorCodes.Unauthorized, "authentication system error")
			})
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.RespondError(w, http.StatusUnauthorized,
					common.StandardErrorCodes.Unauthorized, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				common.RespondError(w, http.StatusUnauthorized,
					common.StandardErrorCodes.Unauthorized, "invalid authorization header format")
				return
			}

			claims, err := validator.Validate(parts[1])
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				common.RespondError(w, http.StatusUnauthorized,
					common.StandardErrorCodes.Unauthorized, "invalid token")
				return
			}

			ctx := auth.WithUser(r.Context(), &auth.UserContext{
				UserID: claims.UserID,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
