// Package keystore provides the key-value persistence backends behind the
// local credential cache: a plain JSON file store, an encrypted-at-rest
// store, and a fallback composition of the two.
package keystore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"tattooer/internal/domain/repository"

	"github.com/pkg/errors"
)

const storeFilePermissions = 0o600

// FileStore is a plain key-value store persisted as a single JSON file.
// Writes are atomic: the file is written to a temp sibling and renamed over
// the old one, so a crash mid-write never leaves a torn file behind.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file store rooted at path. The file is created
// lazily on the first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the value for key, or repository.ErrKeyNotFound.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

// Set stores the value under key.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}

	values[key] = value

	return s.write(values)
}

// Delete removes key. Deleting a missing key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}

	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)

	return s.write(values)
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}

		return nil, errors.Wrap(err, "failed to read store file")
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "store file is corrupt")
	}

	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "failed to encode store values")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create store directory")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, storeFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write store temp file")
	}

	return errors.Wrap(os.Rename(tmp, s.path), "failed to replace store file")
}
