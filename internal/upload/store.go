// Package upload persists documents handed to the session into a
// process-lifetime temp directory. Nothing here deletes files; cleanup is
// left to the OS temp reaper.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store writes uploads into one lazily created temp directory, shared by
// every upload of the session.
type Store struct {
	prefix     string
	extensions map[string]struct{}
	dir        string
}

// NewStore returns a store that accepts the given extensions (without dots,
// case-insensitive) and names its temp directory with prefix.
func NewStore(prefix string, extensions []string) *Store {
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(strings.TrimPrefix(e, "."))] = struct{}{}
	}
	return &Store{prefix: prefix, extensions: exts}
}

// Dir returns the upload directory, creating it on first use.
func (s *Store) Dir() (string, error) {
	if s.dir != "" {
		return s.dir, nil
	}
	dir, err := os.MkdirTemp("", s.prefix)
	if err != nil {
		return "", err
	}
	s.dir = dir
	return dir, nil
}

// Accepts reports whether the file name carries a supported extension.
func (s *Store) Accepts(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	_, ok := s.extensions[ext]
	return ok
}

// Save writes the reader's contents under the upload directory using the
// base of name. A repeated name within the session gets a numeric suffix
// instead of overwriting the earlier upload. Returns the saved path.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	if !s.Accepts(name) {
		return "", fmt.Errorf("unsupported file type %q", filepath.Ext(name))
	}
	dir, err := s.Dir()
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dir, filepath.Base(name))
	dst = disambiguate(dst)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return dst, nil
}

// SaveFile copies an existing file into the upload directory.
func (s *Store) SaveFile(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()
	return s.Save(filepath.Base(path), src)
}

// disambiguate appends -1, -2, ... before the extension until the path is
// unused.
func disambiguate(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}
