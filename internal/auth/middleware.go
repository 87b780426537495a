package auth

import (
	"context"
	"net/http"

	"github.com/sakif/faculty-appraisal/internal/model"
)

// CookieName is the session cookie holding the JWT.
const CookieName = "token"

// contextKey is an unexported type for context keys in this package, so no
// other package can read or shadow the identity value.
type contextKey string

const identityKey contextKey = "identity"

// RequireAuth enforces authentication on protected routes.
//
// It reads the JWT from the session cookie, validates it, and stores the
// identity in the request context. A missing or invalid token ends the
// request with 401.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, err := extractIdentity(r, tokens)
			if err != nil {
				http.Error(w, `{"error":"unauthorized","message":"valid authentication required"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose role doesn't match the
// page's expected role. Mount it after RequireAuth:
//
//	r.Use(auth.RequireAuth(tokens))
//	r.Use(auth.RequireRole(model.RoleAdmin))
func RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := IdentityFromContext(r.Context())
			if !ok {
				http.Error(w, `{"error":"unauthorized","message":"valid authentication required"}`, http.StatusUnauthorized)
				return
			}
			if ident.Role != role {
				http.Error(w, `{"error":"forbidden","message":"`+string(role)+` access required"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext retrieves the authenticated identity from the request
// context. Returns (Identity{}, false) if the request is anonymous.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey).(Identity)
	return ident, ok && ident.UserID != ""
}

// extractIdentity reads the session cookie and validates it.
func extractIdentity(r *http.Request, tokens *TokenService) (Identity, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Identity{}, err
	}

	return tokens.Validate(cookie.Value)
}
