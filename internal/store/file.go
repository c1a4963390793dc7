package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

type fileStore struct {
	path string

	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

type filePersistedState struct {
	Items map[string]string `json:"items"`
}

// NewFileStore returns a [KeyValueStore] backed by a JSON document at path.
// The document is read once here and rewritten after every change with
// owner-only permissions. A missing file is an empty store.
func NewFileStore(path string) (KeyValueStore, error) {
	if path == "" {
		return nil, errors.New("file store path is empty")
	}

	s := &fileStore{
		path:  path,
		items: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrStoreClosed
	}
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	prev, existed := s.items[key]
	s.items[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *fileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	prev, existed := s.items[key]
	if !existed {
		return nil
	}
	delete(s.items, key)
	if err := s.persist(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

func (s *fileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	prev := maps.Clone(s.items)
	clear(s.items)
	if err := s.persist(); err != nil {
		s.items = prev
		return err
	}
	return nil
}

func (s *fileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	if st.Items != nil {
		s.items = st.Items
	}

	return nil
}

func (s *fileStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}
