// Package collection owns the in-memory ordered document collection for the
// current session and the search projection over it.
package collection

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/docuscope/docuscope-cli/internal/client/models"
	"github.com/docuscope/docuscope-cli/internal/logging"
)

// ErrDuplicateID is an invariant violation: ids are backend-assigned and
// unique, so a duplicate ingest indicates a backend bug. The record is
// rejected, never merged.
var ErrDuplicateID = errors.New("duplicate document id")

// Store is the single owner of the ordered document collection. Order is
// recency of ingestion, most recent first, and is never reshuffled by
// filtering. The store is mutated only from the owning flow of control;
// it is not safe for concurrent use.
type Store struct {
	logger   logging.Logger
	records  []models.DocumentRecord
	onChange func()
}

func NewStore(logger logging.Logger) *Store {
	return &Store{logger: logger.With("component", "collection")}
}

// OnChange registers a callback invoked after every mutation. The dashboard
// uses it to recompute the projected view.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// Ingest inserts record at the head of the collection. It fails with
// ErrDuplicateID if a record with the same id already exists.
func (s *Store) Ingest(record models.DocumentRecord) error {
	if s.indexOf(record.ID) >= 0 {
		s.logger.Error(context.Background(), "rejected duplicate document id", "id", record.ID)
		return fmt.Errorf("%w: %s", ErrDuplicateID, record.ID)
	}

	s.records = append([]models.DocumentRecord{record}, s.records...)
	s.notify()
	return nil
}

// Remove deletes the record with the given id and reports whether a removal
// occurred. A missing id is a no-op, not an error, so duplicate delete
// requests from a slow UI are tolerated.
func (s *Store) Remove(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.records = slices.Delete(s.records, i, i+1)
	s.notify()
	return true
}

// All returns a snapshot of the full ordered collection. Callers must not
// rely on mutating the returned slice.
func (s *Store) All() []models.DocumentRecord {
	return slices.Clone(s.records)
}

// Populate replaces the collection with the bulk result of the list
// retrieval endpoint, preserving the given order.
func (s *Store) Populate(records []models.DocumentRecord) {
	s.records = slices.Clone(records)
	s.notify()
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.records, func(r models.DocumentRecord) bool {
		return r.ID == id
	})
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
