package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okProbe(called *bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}
}

func TestSessionGateRedirectsAnonymousToLogin(t *testing.T) {
	h := newTestHandler(t, &fakeStore{}, &fakeAuth{})

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/?priority=High&sort=priority", nil)
	rec := httptest.NewRecorder()
	h.SessionGate(okProbe(&called))(rec, req)

	if called {
		t.Fatal("protected handler ran for an anonymous request")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	want := "/login?redirectTo=%2F%3Fpriority%3DHigh%26sort%3Dpriority"
	if got := rec.Header().Get("Location"); got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
}

func TestSessionGateAllowsAnonymousAuthPages(t *testing.T) {
	h := newTestHandler(t, &fakeStore{}, &fakeAuth{})

	for _, path := range []string{"/login", "/register"} {
		var called bool
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.SessionGate(okProbe(&called))(rec, req)

		if !called {
			t.Errorf("%s: auth page blocked for anonymous request", path)
		}
	}
}

func TestSessionGateBouncesAuthenticatedOffAuthPages(t *testing.T) {
	h := newTestHandler(t, &fakeStore{}, &fakeAuth{session: userSession()})

	tests := []struct {
		target string
		want   string
	}{
		{"/login", "/"},
		{"/login?redirectTo=%2F%3Fsort%3Dpriority", "/?sort=priority"},
		{"/register", "/"},
	}
	for _, tt := range tests {
		var called bool
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid"})
		rec := httptest.NewRecorder()
		h.SessionGate(okProbe(&called))(rec, req)

		if called {
			t.Errorf("%s: auth page ran for an authenticated request", tt.target)
		}
		if got := rec.Header().Get("Location"); got != tt.want {
			t.Errorf("%s: Location = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestSessionGatePassesSessionThrough(t *testing.T) {
	h := newTestHandler(t, &fakeStore{}, &fakeAuth{session: userSession()})

	var gotUID string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid"})
	rec := httptest.NewRecorder()
	h.SessionGate(func(w http.ResponseWriter, r *http.Request) {
		if s := sessionFromContext(r.Context()); s != nil {
			gotUID = s.UID
		}
	})(rec, req)

	if gotUID != "user-1" {
		t.Errorf("session UID in context = %q, want user-1", gotUID)
	}
}
