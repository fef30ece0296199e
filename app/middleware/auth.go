package middleware

import (
	"context"
	"net/http"
	"strings"

	"accountd/app/services"
)

type ctxKey int

const UserKey ctxKey = 1

type Auth struct{ Tokens *services.AuthService }

// RequireAdmin gates user-management routes. A missing header, a non-Bearer
// header, an unknown token, and a non-superuser token all fail the same way,
// and the wrapped handler is never invoked.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			forbidden(w)
			return
		}
		value := strings.TrimPrefix(authz, "Bearer ")
		u, err := a.Tokens.GetUserByToken(value)
		if err != nil || !u.IsSuperuser {
			forbidden(w)
			return
		}
		ctx := context.WithValue(r.Context(), UserKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"admin access required"}`))
}
