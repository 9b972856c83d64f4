package server

import (
	"context"
	"sync"

	apperrors "github.com/jgrunert/amaze/pkg/errors"
	"github.com/jgrunert/amaze/pkg/mazefile"
)

// Store persists maze documents. Implementations must be safe for concurrent
// use.
type Store interface {
	// Insert stores a new document.
	Insert(ctx context.Context, doc mazefile.Document) error

	// Get retrieves a document by id. A missing id fails with
	// [apperrors.ErrCodeMazeNotFound].
	Get(ctx context.Context, id string) (mazefile.Document, error)

	// Delete removes a document. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// MemoryStore is an in-memory Store for development and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]mazefile.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]mazefile.Document)}
}

// Insert stores a document.
func (s *MemoryStore) Insert(_ context.Context, doc mazefile.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return nil
}

// Get retrieves a document by id.
func (s *MemoryStore) Get(_ context.Context, id string) (mazefile.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return mazefile.Document{}, apperrors.New(apperrors.ErrCodeMazeNotFound, "maze %q not found", id)
	}
	return doc, nil
}

// Delete removes a document.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close(context.Context) error { return nil }
