package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Anal-Rauth/Task-Manager/database"
	"github.com/Anal-Rauth/Task-Manager/firebase"
	"github.com/Anal-Rauth/Task-Manager/observability"
	"github.com/Anal-Rauth/Task-Manager/utilities"
	"github.com/Anal-Rauth/Task-Manager/validation"
	"github.com/Anal-Rauth/Task-Manager/web"
)

// Cookie names. The remember cookie stores only the email the user asked us
// to keep; the session cookie value is opaque and owned by the auth provider.
const (
	sessionCookieName  = "task_app_session"
	rememberCookieName = "remember_email"
)

const rememberCookieMaxAge = 60 * 60 * 24 * 30 // 30 days

// AuthService is the hosted auth collaborator as the handlers see it.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context, cookie string) error
	Resolve(ctx context.Context, cookie string) (*firebase.Session, error)
	CookieTTL() time.Duration
}

// Handler carries the collaborators every route handler needs.
type Handler struct {
	store    database.TaskStore
	auth     AuthService
	renderer *web.Renderer
	metrics  *observability.Metrics
}

func New(store database.TaskStore, auth AuthService, renderer *web.Renderer, metrics *observability.Metrics) *Handler {
	return &Handler{store: store, auth: auth, renderer: renderer, metrics: metrics}
}

// ActionFailure is the structured payload returned when a form action cannot
// complete: which action failed, per-field messages, the submitted values for
// re-population, and a summary message.
type ActionFailure struct {
	Action  string
	Errors  validation.Errors
	Values  url.Values
	Message string
}

// resolveSession reads the session cookie and asks the auth provider who it
// belongs to. A missing or invalid cookie yields nil.
func (h *Handler) resolveSession(r *http.Request) *firebase.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	session, err := h.auth.Resolve(r.Context(), cookie.Value)
	if err != nil {
		utilities.LogError(err, "Resolving session")
		return nil
	}
	return session
}

// listURL rebuilds the current list URL, keeping the request's query string
// so filters survive the redirect round trip.
func listURL(r *http.Request) string {
	target := "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	return target
}

// redirectBack sends the caller to the refreshed list view with its filter
// context intact.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, listURL(r), http.StatusSeeOther)
}
