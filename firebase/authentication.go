package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
)

// Sentinel errors the handlers translate into user-facing messages.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already registered")
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// Session is the resolved identity of an authenticated request.
type Session struct {
	UID   string
	Email string
}

// Service talks to the hosted auth provider. Handlers depend on it through
// an interface so tests can substitute a fake.
type Service struct {
	apiKey     string
	cookieTTL  time.Duration
	httpClient *http.Client
}

// NewService reads FIREBASE_WEB_API_KEY and SESSION_TTL_HOURS from the
// environment. Firebase caps session cookies at 14 days; the default here is
// 5 days.
func NewService() *Service {
	ttl := 5 * 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}
	return &Service{
		apiKey:     os.Getenv("FIREBASE_WEB_API_KEY"),
		cookieTTL:  ttl,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CookieTTL is the lifetime of session cookies minted by SignIn.
func (s *Service) CookieTTL() time.Duration {
	return s.cookieTTL
}

// SignIn exchanges the credentials for an ID token at the Identity Toolkit
// endpoint and mints a session cookie from it. Bad credentials come back as
// ErrInvalidCredentials; the provider's raw error detail stays server-side.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", fmt.Errorf("encode sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		signInEndpoint+"?key="+s.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sign-in request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			switch apiErr.Error.Message {
			case "INVALID_LOGIN_CREDENTIALS", "INVALID_PASSWORD", "EMAIL_NOT_FOUND", "USER_DISABLED":
				return "", ErrInvalidCredentials
			}
		}
		return "", fmt.Errorf("sign-in failed with status %d", resp.StatusCode)
	}

	var result struct {
		IDToken string `json:"idToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode sign-in response: %w", err)
	}

	client, err := authClient(ctx)
	if err != nil {
		return "", err
	}
	cookie, err := client.SessionCookie(ctx, result.IDToken, s.cookieTTL)
	if err != nil {
		return "", fmt.Errorf("mint session cookie: %w", err)
	}
	return cookie, nil
}

// SignUp creates the account with the Admin SDK. The user signs in
// afterwards through the login form.
func (s *Service) SignUp(ctx context.Context, email, password string) error {
	client, err := authClient(ctx)
	if err != nil {
		return err
	}

	params := (&fbauth.UserToCreate{}).
		Email(email).
		EmailVerified(false).
		Password(password).
		Disabled(false)

	if _, err := client.CreateUser(ctx, params); err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return ErrEmailInUse
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Resolve verifies a session cookie and returns the identity it carries, or
// nil when the cookie is missing, expired, or revoked.
func (s *Service) Resolve(ctx context.Context, cookie string) (*Session, error) {
	if cookie == "" {
		return nil, nil
	}

	client, err := authClient(ctx)
	if err != nil {
		return nil, err
	}

	token, err := client.VerifySessionCookieAndCheckRevoked(ctx, cookie)
	if err != nil {
		// An invalid or expired cookie is an anonymous request, not a
		// server failure.
		return nil, nil
	}

	email, _ := token.Claims["email"].(string)
	return &Session{UID: token.UID, Email: email}, nil
}

// SignOut revokes the user's refresh tokens, invalidating every session
// cookie minted for them.
func (s *Service) SignOut(ctx context.Context, cookie string) error {
	client, err := authClient(ctx)
	if err != nil {
		return err
	}

	token, err := client.VerifySessionCookie(ctx, cookie)
	if err != nil {
		return nil
	}
	if err := client.RevokeRefreshTokens(ctx, token.UID); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}
	return nil
}
