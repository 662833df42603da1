// Package session holds the in-memory authenticated session: the bearer
// access token returned by the auth endpoints and the signed-in identity.
// Nothing here is persisted; closing the client ends the session.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("not signed in")

type Session struct {
	token       string
	email       string
	displayName string
}

func New() *Session {
	return &Session{}
}

// Begin replaces the current session with a new one.
func (s *Session) Begin(token, email, displayName string) {
	s.token = token
	s.email = email
	s.displayName = displayName
}

// End discards the session.
func (s *Session) End() {
	*s = Session{}
}

func (s *Session) Active() bool { return s.token != "" }

func (s *Session) Token() string { return s.token }

func (s *Session) Email() string { return s.email }

func (s *Session) DisplayName() string { return s.displayName }

// ExpiresAt decodes the token's exp claim without verifying the signature.
// Verification belongs to the backend; the client only reports expiry.
func (s *Session) ExpiresAt() (time.Time, error) {
	if s.token == "" {
		return time.Time{}, ErrNoSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("token has no expiry")
	}
	return exp.Time, nil
}
