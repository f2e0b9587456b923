// Package fs provides file-based storage for the station catalog.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/radiogaga"
)

// Ensure CatalogStore implements radiogaga.CatalogStore at compile time.
var _ radiogaga.CatalogStore = (*CatalogStore)(nil)

// CatalogStore keeps the catalog in a JSON file mapping station names to
// stream URLs. Saves are atomic: the catalog is written to a temporary file
// in the same directory, which then replaces the original.
type CatalogStore struct {
	path string
}

// NewCatalogStore creates a CatalogStore backed by the file at path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Path returns the absolute path of the backing file, or the path as given
// if it cannot be made absolute.
func (s *CatalogStore) Path() string {
	if abs, err := filepath.Abs(s.path); err == nil {
		return abs
	}
	return s.path
}

// Load reads the catalog file.
// Returns ENOTFOUND if the file does not exist.
func (s *CatalogStore) Load(ctx context.Context) (*radiogaga.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, radiogaga.Errorf(radiogaga.ENOTFOUND, "catalog file %s does not exist", s.Path())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	c := radiogaga.NewCatalog()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path(), err)
	}
	return c, nil
}

// Save writes the catalog as indented JSON, replacing the existing file.
func (s *CatalogStore) Save(ctx context.Context, c *radiogaga.Catalog) error {
	data, err := EncodeCatalog(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Atomically replace the previous catalog
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// EncodeCatalog formats a catalog as UTF-8 JSON indented with four spaces.
// Non-ASCII characters and HTML-significant characters are written as is.
func EncodeCatalog(c *radiogaga.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
