package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestBeginEnd(t *testing.T) {
	s := New()
	require.False(t, s.Active())

	s.Begin("tok", "jane@example.com", "Jane Doe")
	require.True(t, s.Active())
	require.Equal(t, "tok", s.Token())
	require.Equal(t, "Jane Doe", s.DisplayName())

	s.End()
	require.False(t, s.Active())
	require.Empty(t, s.Token())
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	s := New()
	s.Begin(signedToken(t, exp), "jane@example.com", "Jane Doe")

	got, err := s.ExpiresAt()
	require.NoError(t, err)
	require.True(t, got.Equal(exp))
}

func TestExpiresAt_NoSession(t *testing.T) {
	_, err := New().ExpiresAt()
	require.ErrorIs(t, err, ErrNoSession)
}

func TestExpiresAt_OpaqueToken(t *testing.T) {
	s := New()
	s.Begin("not-a-jwt", "jane@example.com", "Jane Doe")
	_, err := s.ExpiresAt()
	require.Error(t, err)
}
