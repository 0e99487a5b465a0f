package httpapi

import (
	"context"
	"net/http"
	"strings"

	"imagevault/internal/services"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// IdentityFromContext returns the authenticated caller attached by
// requireAuth, or nil.
func IdentityFromContext(ctx context.Context) *services.Identity {
	id, _ := ctx.Value(ctxKeyIdentity).(*services.Identity)
	return id
}

// requireAuth extracts the token from "Authorization: Bearer <token>",
// authenticates it and injects the resulting identity into the request
// context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if h == "" {
			sendErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing Authorization header")
			return
		}
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			sendErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header must be: Bearer <token>")
			return
		}

		identity, err := s.auth.Authenticate(parts[1])
		if err != nil {
			sendError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyIdentity, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
