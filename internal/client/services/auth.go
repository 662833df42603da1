// Package services contains the application services composed by the
// dashboard: the session auth gateway and the document service.
package services

import (
	"context"
	"fmt"

	"github.com/docuscope/docuscope-cli/internal/client/api"
	"github.com/docuscope/docuscope-cli/internal/client/models"
	"github.com/docuscope/docuscope-cli/internal/client/session"
)

// AuthService is the session auth gateway. Each call issues exactly one
// request; concurrent calls are not deduplicated here, the caller disables
// its trigger while a request is pending.
type AuthService interface {
	SignUp(ctx context.Context, creds models.Credentials) error
	SignIn(ctx context.Context, creds models.Credentials) error
	SignOut()
	Ping(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Session
}

func NewAuthService(client api.Client, sess *session.Session) AuthService {
	return &authService{client: client, session: sess}
}

// SignUp creates an account and begins a session with the returned token.
// Backend validation details (e.g. "User already exists") travel inside the
// wrapped api error and are surfaced to the user verbatim.
func (a *authService) SignUp(ctx context.Context, creds models.Credentials) error {
	token, err := a.client.SignUp(ctx, creds)
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	a.session.Begin(token, creds.Email, creds.DisplayName)
	return nil
}

// SignIn authenticates and begins a session with the returned token.
func (a *authService) SignIn(ctx context.Context, creds models.Credentials) error {
	token, err := a.client.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	a.session.Begin(token, creds.Email, creds.DisplayName)
	return nil
}

// SignOut drops the in-memory session and the transport token.
func (a *authService) SignOut() {
	a.session.End()
	a.client.SetToken("")
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
