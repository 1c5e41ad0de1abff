package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/Anal-Rauth/Task-Manager/firebase"
	"github.com/Anal-Rauth/Task-Manager/utilities"
	"github.com/Anal-Rauth/Task-Manager/validation"
)

type loginPageData struct {
	Email      string
	Remember   bool
	Errors     validation.Errors
	Message    string
	RedirectTo string
	Registered bool
	Action     string
}

// loginAction carries the redirect target through the login form submit.
func loginAction(redirectTo string) string {
	if redirectTo == "" {
		return "/login"
	}
	return "/login?redirectTo=" + url.QueryEscape(redirectTo)
}

type registerPageData struct {
	Email   string
	Errors  validation.Errors
	Message string
}

// safeRedirectTarget keeps post-login redirects on this site.
func safeRedirectTarget(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	return raw
}

// LoginPage renders the login form, pre-filling the remembered email when
// the remember cookie is set.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := loginPageData{
		RedirectTo: r.URL.Query().Get("redirectTo"),
		Registered: r.URL.Query().Get("registered") == "1",
	}
	if cookie, err := r.Cookie(rememberCookieName); err == nil {
		if email, err := url.QueryUnescape(cookie.Value); err == nil {
			data.Email = email
			data.Remember = email != ""
		}
	}

	h.renderLogin(w, data, http.StatusOK)
}

// LoginSubmit validates the credentials, signs in against the auth provider,
// sets the session cookie, and honors the remember flag.
func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	redirectTo := r.URL.Query().Get("redirectTo")

	input, errs := validation.Login(r.PostForm)
	if !errs.Ok() {
		h.renderLogin(w, loginPageData{
			Email:      input.Email,
			Remember:   input.Remember,
			Errors:     errs,
			Message:    "Please fix the highlighted errors.",
			RedirectTo: redirectTo,
		}, http.StatusBadRequest)
		return
	}

	sessionCookie, err := h.auth.SignIn(r.Context(), input.Email, input.Password)
	if err != nil {
		message := "Unable to log in with those credentials."
		if errors.Is(err, firebase.ErrInvalidCredentials) {
			message = "Invalid email or password, or your email is not confirmed yet."
		} else {
			utilities.LogError(err, "Signing in")
		}
		h.renderLogin(w, loginPageData{
			Email:      input.Email,
			Remember:   input.Remember,
			Message:    message,
			RedirectTo: redirectTo,
		}, http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionCookie,
		Path:     "/",
		MaxAge:   int(h.auth.CookieTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if input.Remember {
		http.SetCookie(w, &http.Cookie{
			Name:   rememberCookieName,
			Value:  url.QueryEscape(input.Email),
			Path:   "/",
			MaxAge: rememberCookieMaxAge,
		})
	} else {
		http.SetCookie(w, &http.Cookie{
			Name:   rememberCookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}

	http.Redirect(w, r, safeRedirectTarget(redirectTo), http.StatusSeeOther)
}

func (h *Handler) renderLogin(w http.ResponseWriter, data loginPageData, status int) {
	data.Action = loginAction(data.RedirectTo)
	if err := h.renderer.Render(w, status, "login", data); err != nil {
		utilities.LogError(err, "Rendering login page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// RegisterPage renders the registration form.
func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, http.StatusOK, "register", registerPageData{}); err != nil {
		utilities.LogError(err, "Rendering register page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// RegisterSubmit creates the account and sends the user to the login form
// with a success flag.
func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	input, errs := validation.Register(r.PostForm)
	if !errs.Ok() {
		h.renderRegister(w, registerPageData{Email: input.Email, Errors: errs}, http.StatusBadRequest)
		return
	}

	if err := h.auth.SignUp(r.Context(), input.Email, input.Password); err != nil {
		message := "Could not create your account."
		if errors.Is(err, firebase.ErrEmailInUse) {
			message = "That email is already registered."
		} else {
			utilities.LogError(err, "Signing up")
		}
		h.renderRegister(w, registerPageData{Email: input.Email, Message: message}, http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

func (h *Handler) renderRegister(w http.ResponseWriter, data registerPageData, status int) {
	if err := h.renderer.Render(w, status, "register", data); err != nil {
		utilities.LogError(err, "Rendering register page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Logout revokes the session at the provider, clears both cookies, and sends
// the user to the login page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.auth.SignOut(r.Context(), cookie.Value); err != nil {
			utilities.LogError(err, "Signing out")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:   rememberCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
