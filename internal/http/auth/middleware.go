package auth

import (
	"context"
	"net/http"

	"github.com/MrJamesThe3rd/budgeter/internal/auth"
	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
)

type claimsKey struct{}

// RequireSession rejects requests without a valid session cookie and stores
// the session claims in the request context.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if c, err := r.Cookie(CookieName); err == nil {
			token = c.Value
		}

		claims, err := h.svc.Authenticate(token)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	})
}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}
