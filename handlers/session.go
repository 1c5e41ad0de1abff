package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Anal-Rauth/Task-Manager/firebase"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionGate enforces the two-rule gate in front of page loads: anonymous
// requests to protected pages bounce to login carrying the original
// destination, and authenticated requests to the auth pages bounce home (or
// to the pending destination).
func (h *Handler) SessionGate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := h.resolveSession(r)
		isAuthRoute := r.URL.Path == "/login" || r.URL.Path == "/register"

		if session == nil && !isAuthRoute {
			target := r.URL.Path
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, "/login?redirectTo="+url.QueryEscape(target), http.StatusSeeOther)
			return
		}

		if session != nil && isAuthRoute {
			redirectTo := r.URL.Query().Get("redirectTo")
			if redirectTo == "" {
				redirectTo = "/"
			}
			http.Redirect(w, r, redirectTo, http.StatusSeeOther)
			return
		}

		if session != nil {
			r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, session))
		}
		next(w, r)
	}
}

// sessionFromContext returns the session the gate resolved, or nil.
func sessionFromContext(ctx context.Context) *firebase.Session {
	session, _ := ctx.Value(sessionContextKey).(*firebase.Session)
	return session
}
