// Package firebase wraps the hosted identity provider: password sign-in
// through the Identity Toolkit endpoint and session cookies minted and
// verified with the Firebase Admin SDK.
package firebase

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var app *firebase.App

// appHandle returns the process-wide Firebase app, creating it on first use.
// Initialization is cheap and idempotent, so a plain existence check is
// enough; concurrent first callers would build equivalent handles.
func appHandle() (*firebase.App, error) {
	if app != nil {
		return app, nil
	}

	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is not set")
	}

	opt := option.WithCredentialsFile(credentialsPath)
	a, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	app = a
	return app, nil
}

func authClient(ctx context.Context) (*auth.Client, error) {
	a, err := appHandle()
	if err != nil {
		return nil, err
	}
	client, err := a.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("get auth client: %w", err)
	}
	return client, nil
}
