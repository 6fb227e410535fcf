package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nivethitha870/BANK/internal/utils"
)

type contextKey string

// Context keys populated by Auth.
const (
	AccountNumberKey contextKey = "accountNumber"
	RoleKey          contextKey = "role"
)

// Auth validates the bearer token and stores the caller's account number and
// role in the request context.
func Auth(tokens *utils.TokenSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Pull the token from the Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Missing authorization header", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			// 2. Validate it
			claims, err := tokens.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			// 3. Hand identity to the handlers via context
			ctx := context.WithValue(r.Context(), AccountNumberKey, claims.AccountNumber)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a handler to the given roles. Must run inside Auth.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(RoleKey).(string)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "Forbidden", http.StatusForbidden)
		})
	}
}

// CallerAccountNumber returns the account number Auth stored in the context.
func CallerAccountNumber(ctx context.Context) (string, bool) {
	accountNumber, ok := ctx.Value(AccountNumberKey).(string)
	return accountNumber, ok
}

// CallerRole returns the role Auth stored in the context.
func CallerRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
