// Package api contains the HTTP adapter for the DocuScope backend: auth,
// document upload, list retrieval, delete, and a liveness probe.
package api

import (
	"context"
	"io"

	"github.com/docuscope/docuscope-cli/internal/client/models"
)

// Client is the transport boundary between the client core and the backend.
//
// Contract:
//   - SignUp/SignIn: one request each, returning the opaque access token.
//   - UploadDocument: exactly one multipart request per call, no retries.
//   - ListDocuments: bulk retrieval used for initial store population.
//   - DeleteDocument: backend acknowledgement for a local remove.
//   - Ping: liveness probe.
//
// All methods honor context cancellation and timeouts.
type Client interface {
	SignUp(ctx context.Context, creds models.Credentials) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	UploadDocument(ctx context.Context, name, contentType string, payload io.Reader) (*models.DocumentRecord, error)
	ListDocuments(ctx context.Context) ([]models.DocumentRecord, error)
	DeleteDocument(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	SetToken(token string)
}
