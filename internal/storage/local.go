// Package storage implements the on-disk upload store. Videos live in
// per-category directories under one upload root; thumbnails share a single
// "thumbnails" directory. All paths handed out are relative to the root.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ThumbnailDir is the shared directory for video thumbnails under the root.
const ThumbnailDir = "thumbnails"

// ErrInvalidPath is returned when a relative path escapes the upload root.
var ErrInvalidPath = errors.New("path escapes upload root")

// Store is a local-disk file store rooted at a single upload directory.
type Store struct {
	root string
}

// NewStore creates the upload root (idempotently) and returns a store for it.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute upload root directory.
func (s *Store) Root() string {
	return s.root
}

// ThumbnailName derives the stored thumbnail filename for an uploaded file.
func ThumbnailName(filename string) string {
	return filename + "_thumb.jpg"
}

// Resolve maps a relative path to an absolute path inside the root.
// Any path whose cleaned form escapes the root is rejected.
func (s *Store) Resolve(rel string) (string, error) {
	// Reject absolute inputs outright; Join would still contain them.
	if filepath.IsAbs(rel) || strings.Contains(rel, "\x00") {
		return "", ErrInvalidPath
	}

	abs := filepath.Join(s.root, filepath.FromSlash(rel))
	inside, err := filepath.Rel(s.root, abs)
	if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return abs, nil
}

// Save writes r verbatim to <root>/<dir>/<filename>, creating the directory
// if absent. An existing file with the same name is overwritten. Returns the
// relative stored path (slash-separated) and the number of bytes written.
func (s *Store) Save(dir, filename string, r io.Reader) (string, int64, error) {
	rel := filepath.ToSlash(filepath.Join(dir, filename))
	abs, err := s.Resolve(rel)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", 0, fmt.Errorf("create directory: %w", err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", 0, fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// A partial write must not be served later.
		os.Remove(abs)
		return "", 0, fmt.Errorf("write file: %w", err)
	}

	return rel, n, nil
}

// Open opens the file at the given relative path for reading.
func (s *Store) Open(rel string) (*os.File, error) {
	abs, err := s.Resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.Open(abs)
}

// Exists reports whether a regular file exists at the relative path.
func (s *Store) Exists(rel string) bool {
	abs, err := s.Resolve(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes the file at the relative path. Missing files are not an error.
func (s *Store) Remove(rel string) error {
	abs, err := s.Resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
