package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore is a file-based layout store for CLI use.
// Each session key maps to one JSON file in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store.
// If baseDir is empty, defaults to ~/.config/gridboard/layouts/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "gridboard", "layouts")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create layout dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) docPath(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}

func (s *FileStore) Get(ctx context.Context, key string) (*LayoutDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(key)
}

func (s *FileStore) Update(ctx context.Context, key string, patch Patch) (*LayoutDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(key)
	if err == ErrNotFound {
		doc = &LayoutDocument{Key: key}
	} else if err != nil {
		return nil, err
	}

	patch.Apply(doc, time.Now().UTC())

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	if err := os.WriteFile(s.docPath(key), data, 0600); err != nil {
		return nil, fmt.Errorf("write layout file: %w", err)
	}
	return doc, nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.docPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove layout file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for layout files.
func (s *FileStore) Path() string {
	return s.baseDir
}

func (s *FileStore) read(key string) (*LayoutDocument, error) {
	data, err := os.ReadFile(s.docPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	var doc LayoutDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &doc, nil
}

var _ Store = (*FileStore)(nil)
