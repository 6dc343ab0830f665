package middleware

import (
	"net/http"

	"bistro-api/internal/service"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
)

// RequireAdmin creates the role authorization middleware. It must be mounted
// after Auth: it reads the verified claims from the request context and
// trusts the subject email as authenticated truth. The role itself is never
// carried in the token; it is looked up in the store on every request so a
// promotion or demotion takes effect immediately.
func RequireAdmin(users service.UserService, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				// Route misconfiguration: RequireAdmin without Auth.
				writeErrorResponse(w, errors.NewAuthenticationError("Authentication required"), logger)
				return
			}

			isAdmin, err := users.IsAdmin(r.Context(), claims.Email)
			if err != nil {
				logger.WithError(err).Error("Role lookup failed")
				writeErrorResponse(w, errors.NewInternalError("Failed to verify role", err), logger)
				return
			}

			if !isAdmin {
				logger.WithField("subject", claims.Email).Debug("Admin access denied")
				writeErrorResponse(w, errors.NewAuthorizationError("Admin access required"), logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
