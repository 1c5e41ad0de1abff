package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Anal-Rauth/Task-Manager/firebase"
	"github.com/Anal-Rauth/Task-Manager/models"
	"github.com/Anal-Rauth/Task-Manager/observability"
	"github.com/Anal-Rauth/Task-Manager/web"
)

// One metrics instance per test binary; promauto registers collectors
// globally.
var testMetrics = observability.NewMetrics("handlers_test")

type listCall struct {
	UserID  string
	Filters models.Filters
}

type updateCall struct {
	ID     string
	UserID string
	Input  models.TaskInput
}

type ownerCall struct {
	ID     string
	UserID string
}

type statusCall struct {
	ID     string
	UserID string
	Status string
}

// fakeStore records every call so tests can assert owner scoping and call
// counts without a database.
type fakeStore struct {
	tasks   []models.Task
	listErr error

	createErr error
	updateErr error
	deleteErr error
	statusErr error

	listCalls   []listCall
	created     []models.Task
	updates     []updateCall
	deletes     []ownerCall
	statusCalls []statusCall
}

func (f *fakeStore) List(ctx context.Context, userID string, filters models.Filters) ([]models.Task, error) {
	f.listCalls = append(f.listCalls, listCall{UserID: userID, Filters: filters})
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Task
	for _, task := range f.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(ctx context.Context, task models.Task) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, task)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, id, userID string, input models.TaskInput, updatedAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, updateCall{ID: id, UserID: userID, Input: input})
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id, userID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, ownerCall{ID: id, UserID: userID})
	return nil
}

func (f *fakeStore) SetStatus(ctx context.Context, id, userID, status string, updatedAt time.Time) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusCalls = append(f.statusCalls, statusCall{ID: id, UserID: userID, Status: status})
	return nil
}

// fakeAuth resolves any non-empty cookie to the configured session.
type fakeAuth struct {
	session *firebase.Session

	signInCookie string
	signInErr    error
	signUpErr    error

	signUps   []string
	signOuts  []string
	lastEmail string
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (string, error) {
	f.lastEmail = email
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return f.signInCookie, nil
}

func (f *fakeAuth) SignUp(ctx context.Context, email, password string) error {
	if f.signUpErr != nil {
		return f.signUpErr
	}
	f.signUps = append(f.signUps, email)
	return nil
}

func (f *fakeAuth) SignOut(ctx context.Context, cookie string) error {
	f.signOuts = append(f.signOuts, cookie)
	return nil
}

func (f *fakeAuth) Resolve(ctx context.Context, cookie string) (*firebase.Session, error) {
	if cookie == "" {
		return nil, nil
	}
	return f.session, nil
}

func (f *fakeAuth) CookieTTL() time.Duration {
	return 5 * 24 * time.Hour
}

func newTestHandler(t *testing.T, store *fakeStore, auth *fakeAuth) *Handler {
	t.Helper()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return New(store, auth, renderer, testMetrics)
}

func postForm(target string, form url.Values, authenticated bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authenticated {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid"})
	}
	return req
}
