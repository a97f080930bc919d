package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

// Ensure TokenStore implements the interface.
var _ driven.TokenTier = (*TokenStore)(nil)

// TokenStore is a credential tier that keeps each key as a raw file in one
// directory. Files are written with 0600 permissions.
type TokenStore struct {
	mu  sync.Mutex
	dir string
}

// NewTokenStore creates a file tier rooted at dir.
// If dir is empty, defaults to ~/.brbadmin/tokens.
func NewTokenStore(dir string) (*TokenStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".brbadmin", "tokens")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating token directory: %w", err)
	}
	return &TokenStore{dir: dir}, nil
}

// Name returns the tier name.
func (s *TokenStore) Name() string {
	return "file"
}

// Dir returns the directory holding the token files.
func (s *TokenStore) Dir() string {
	return s.dir
}

// Get retrieves the value stored under key.
func (s *TokenStore) Get(ctx context.Context, key string) (string, error) {
	p, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("reading token file: %w: %v", domain.ErrStorageUnavailable, err)
	}
	return string(data), nil
}

// Set writes value under key. The write goes through a temp file and a
// rename so readers never see a partial value.
func (s *TokenStore) Set(ctx context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+key+".*")
	if err != nil {
		return fmt.Errorf("creating token file: %w: %v", domain.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("restricting token file: %w", err)
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("writing token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing token file: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("replacing token file: %w", err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *TokenStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}

// path maps key to a file inside the tier directory.
func (s *TokenStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: token key %q", domain.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key), nil
}
