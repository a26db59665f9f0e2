package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"buildboard/internal/models"
)

func writeEnvelope(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.APIResponse{Success: false, Error: errMsg})
}

// JWTAuth rejects requests without a valid bearer token before any
// handler runs, and stores the claims in the request context.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				writeEnvelope(w, http.StatusUnauthorized, "No token provided")
				return
			}
			raw := strings.TrimPrefix(h, "Bearer ")
			claims, err := Verify(secret, raw)
			if err != nil {
				writeEnvelope(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole gates a route on the authenticated user's role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := FromContext(r.Context())
			if c == nil || c.Role != role {
				writeEnvelope(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
