package files

import (
	"context"
	"sync"

	apperrors "promarket.com/promarket/internal/errors"
)

// Store holds uploaded file contents keyed by the stored file name.
// Metadata lives in the file_resources table; this contract covers the
// bytes only so a real object store can replace the in-memory one.
type Store interface {
	Put(ctx context.Context, name string, content []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}

type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Put(ctx context.Context, name string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[name] = content
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.blobs[name]
	if !ok {
		return nil, apperrors.ErrFileNotFound
	}
	return content, nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, name)
	return nil
}
