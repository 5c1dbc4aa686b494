package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"flashcards/internal/logger"
	"flashcards/internal/models"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Catalog enumerates the sets available in a storage directory.
type Catalog struct {
	fs     afero.Fs
	dir    string
	suffix string
	logger logger.Logger
}

func NewCatalog(fsys afero.Fs, dir, suffix string, log logger.Logger) *Catalog {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Catalog{
		fs:     fsys,
		dir:    dir,
		suffix: suffix,
		logger: log.WithComponent("catalog"),
	}
}

// ListSets returns the titles of every regular file in the directory that ends
// with the document suffix, sorted alphabetically. A missing or empty
// directory yields an empty list.
func (c *Catalog) ListSets() ([]string, error) {
	entries, err := afero.ReadDir(c.fs, c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: list %s: %w", models.ErrStorage, c.dir, err)
	}

	titles := lo.FilterMap(entries, func(info os.FileInfo, _ int) (string, bool) {
		name := info.Name()
		if info.IsDir() || !strings.HasSuffix(name, c.suffix) {
			return "", false
		}
		title := strings.TrimSuffix(name, c.suffix)
		return title, title != ""
	})
	slices.Sort(titles)

	c.logger.Debug("Catalog scanned", map[string]interface{}{
		"dir":  c.dir,
		"sets": len(titles),
	})
	return titles, nil
}
