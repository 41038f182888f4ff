package prefs

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore is an in-process store for development and testing.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*LayoutDocument
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*LayoutDocument)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (*LayoutDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDoc(doc), nil
}

func (s *MemoryStore) Update(ctx context.Context, key string, patch Patch) (*LayoutDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[key]
	if !ok {
		doc = &LayoutDocument{Key: key}
		s.docs[key] = doc
	}
	patch.Apply(doc, time.Now().UTC())
	return cloneDoc(doc), nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// cloneDoc deep-copies through JSON so callers cannot mutate stored state.
func cloneDoc(doc *LayoutDocument) *LayoutDocument {
	data, _ := json.Marshal(doc)
	var out LayoutDocument
	_ = json.Unmarshal(data, &out)
	return &out
}

var _ Store = (*MemoryStore)(nil)
