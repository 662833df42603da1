package services

import (
	"context"
	"fmt"

	"github.com/docuscope/docuscope-cli/internal/client/api"
	"github.com/docuscope/docuscope-cli/internal/client/collection"
	"github.com/docuscope/docuscope-cli/internal/logging"
)

// DocumentService loads the initial collection and performs acknowledged
// deletes against the backend.
type DocumentService interface {
	Load(ctx context.Context) error
	Delete(ctx context.Context, id string) (bool, error)
}

type documentService struct {
	client api.Client
	store  *collection.Store
	logger logging.Logger
}

func NewDocumentService(client api.Client, store *collection.Store, logger logging.Logger) DocumentService {
	return &documentService{
		client: client,
		store:  store,
		logger: logger.With("component", "documents"),
	}
}

// Load populates the store from the list retrieval endpoint. Until this
// succeeds the collection stays empty; there is no placeholder data.
func (s *documentService) Load(ctx context.Context) error {
	docs, err := s.client.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}

	s.store.Populate(docs)
	s.logger.Info(ctx, "document list loaded", "count", len(docs))
	return nil
}

// Delete removes a document, backend first. The local collection is only
// mutated after the backend acknowledges, so a failed delete leaves the
// list untouched. The bool reports whether a local record was removed.
func (s *documentService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.client.DeleteDocument(ctx, id); err != nil {
		return false, fmt.Errorf("delete document %s: %w", id, err)
	}
	return s.store.Remove(id), nil
}
