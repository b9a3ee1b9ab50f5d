package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
)

// FileStore keeps the session as a small JSON document, the CLI's stand-in for the
// browser's local storage.
type FileStore struct {
	fs   afero.Fs
	path string
}

func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// NewEphemeralStore keeps the session in memory for the lifetime of one request.
func NewEphemeralStore() *FileStore {
	return NewFileStore(afero.NewMemMapFs(), "/session.json")
}

var _ ports.SessionStore = (*FileStore)(nil)

// Load returns an empty session when nothing has been saved yet.
func (s *FileStore) Load() (domain.Session, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("read session %s: %w", s.path, err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domain.Session{}, fmt.Errorf("parse session %s: %w", s.path, err)
	}
	return sess, nil
}

func (s *FileStore) Save(sess domain.Session) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := s.fs.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session %s: %w", s.path, err)
	}
	return nil
}
