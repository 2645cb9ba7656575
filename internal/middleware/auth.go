// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgoss28/clear-match-ai/internal/auth"
	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/repository"
	"github.com/google/uuid"
)

type principalContextKey struct{}

// PrincipalFrom returns the authenticated principal stored by
// AuthMiddleware.
func PrincipalFrom(ctx context.Context) (authz.Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(authz.Principal)
	return p, ok
}

// WithPrincipal is used by tests to inject a principal directly.
func WithPrincipal(ctx context.Context, p authz.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// AuthMiddleware validates the bearer token and resolves the caller's
// profile into a request-scoped principal. The organization is read from
// the profiles table on every request, not from the token, so the
// principal always reflects current membership.
func AuthMiddleware(tokenManager *auth.TokenManager, profiles repository.ProfileRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			profileID, err := uuid.Parse(claims.ProfileID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
				return
			}

			profile, err := profiles.FindByID(r.Context(), profileID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Unknown profile")
				return
			}

			principal := authz.Principal{
				UserID:         profile.ID,
				OrganizationID: profile.OrganizationID,
				Role:           string(profile.Role),
			}

			ctx := WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
