// Package storage persists flashcard sets as one JSON document per set.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"flashcards/internal/logger"
	"flashcards/internal/models"

	"github.com/spf13/afero"
)

// DefaultSuffix is the document suffix used by earlier versions of the app.
const DefaultSuffix = ".txt"

// reservedChars cannot appear in a new title because the title becomes a filename.
const reservedChars = "/\\:*?\"<>|\x00"

// pathChars would let a title escape the storage directory.
const pathChars = "/\\\x00"

// tempPattern names in-flight writes. It does not embed the title, so any
// title whose document name fits the filesystem can be written.
const tempPattern = ".flashcards-*.tmp"

// SetStore reads and writes whole flashcard set documents. Writes replace any
// existing document with the same title.
type SetStore struct {
	fs     afero.Fs
	dir    string
	suffix string
	logger logger.Logger
}

func NewSetStore(fsys afero.Fs, dir, suffix string, log logger.Logger) *SetStore {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &SetStore{
		fs:     fsys,
		dir:    dir,
		suffix: suffix,
		logger: log.WithComponent("set_store"),
	}
}

// ValidateTitle reports whether title can be used as a storage key.
func ValidateTitle(title string) error {
	switch {
	case strings.TrimSpace(title) == "":
		return fmt.Errorf("%w: title is empty", models.ErrInvalidTitle)
	case title == "." || title == "..":
		return fmt.Errorf("%w: %q", models.ErrInvalidTitle, title)
	case strings.ContainsAny(title, reservedChars):
		return fmt.Errorf("%w: %q contains a reserved character", models.ErrInvalidTitle, title)
	}
	return nil
}

// validateKey accepts any title that names a file inside the storage
// directory. Documents written by other tools may use characters Save refuses.
func validateKey(title string) error {
	switch {
	case title == "":
		return fmt.Errorf("%w: title is empty", models.ErrInvalidTitle)
	case title == "." || title == "..":
		return fmt.Errorf("%w: %q", models.ErrInvalidTitle, title)
	case strings.ContainsAny(title, pathChars):
		return fmt.Errorf("%w: %q contains a path separator", models.ErrInvalidTitle, title)
	}
	return nil
}

// Path returns the document path for title.
func (s *SetStore) Path(title string) string {
	return filepath.Join(s.dir, title+s.suffix)
}

func (s *SetStore) Suffix() string { return s.suffix }

// Save writes cards under title. The document is written to a temporary file
// and renamed into place.
func (s *SetStore) Save(title string, cards map[string]string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	if cards == nil {
		cards = map[string]string{}
	}

	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %w", models.ErrStorage, title, err)
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", models.ErrStorage, s.dir, err)
	}

	tmp, err := afero.TempFile(s.fs, s.dir, tempPattern)
	if err != nil {
		return fmt.Errorf("%w: create temp file for %q: %w", models.ErrStorage, title, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: write %q: %w", models.ErrStorage, title, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: close %q: %w", models.ErrStorage, title, err)
	}

	path := s.Path(title)
	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: rename into %s: %w", models.ErrStorage, path, err)
	}

	s.logger.Info("Flashcard set saved", map[string]interface{}{
		"title": title,
		"path":  path,
		"cards": len(cards),
	})
	return nil
}

// Load reads the set stored under title.
func (s *SetStore) Load(title string) (*models.FlashcardSet, error) {
	if err := validateKey(title); err != nil {
		return nil, err
	}

	path := s.Path(title)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", models.ErrNotFound, title)
		}
		return nil, fmt.Errorf("%w: read %s: %w", models.ErrStorage, path, err)
	}

	var cards map[string]string
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", models.ErrCorruptData, title, err)
	}
	if cards == nil {
		return nil, fmt.Errorf("%w: %q is not a JSON object", models.ErrCorruptData, title)
	}

	s.logger.Debug("Flashcard set loaded", map[string]interface{}{
		"title": title,
		"cards": len(cards),
	})
	return &models.FlashcardSet{Title: title, Cards: cards}, nil
}

// Exists reports whether a document is stored under title.
func (s *SetStore) Exists(title string) bool {
	if validateKey(title) != nil {
		return false
	}
	ok, err := afero.Exists(s.fs, s.Path(title))
	return err == nil && ok
}
