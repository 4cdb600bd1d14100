package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fardannozami/portfolio/internal/model"
)

// LocalStore keeps the snapshot in a file under a local directory.
// Writes go through a temp file and rename, so a concurrent read never
// observes a half-written document.
type LocalStore struct {
	dir string
	key string
}

func NewLocalStore(dir, key string) *LocalStore {
	return &LocalStore{dir: dir, key: key}
}

func (s *LocalStore) path() string {
	return filepath.Join(s.dir, s.key)
}

// Save replaces the snapshot file wholesale and returns its path.
func (s *LocalStore) Save(ctx context.Context, posts []model.Post) (string, error) {
	data, err := encodeSnapshot(posts)
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(s.dir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, s.key+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	err = os.Rename(tmp.Name(), s.path())
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return s.path(), nil
}

// Load reads the snapshot file; a missing or malformed file is an error
// and callers fall back to an empty collection.
func (s *LocalStore) Load(ctx context.Context) ([]model.Post, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return decodeSnapshot(data)
}
