package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps one file per slot under a directory.
type JSONStore struct {
	dir string
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *JSONStore) slotPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *JSONStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.slotPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, true, nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.slotPath(key), value, 0600); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func (s *JSONStore) Delete(key string) error {
	if err := os.Remove(s.slotPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.dir
}
