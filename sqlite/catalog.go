package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/radiogaga"
)

// Compile-time interface verification.
var _ radiogaga.CatalogStore = (*CatalogStore)(nil)

// CatalogStore implements radiogaga.CatalogStore using SQLite.
type CatalogStore struct {
	db *DB
}

// NewCatalogStore creates a new CatalogStore.
func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Load reads the stored catalog in its saved order.
// Returns ENOTFOUND if no catalog has been saved.
func (s *CatalogStore) Load(ctx context.Context) (*radiogaga.Catalog, error) {
	if _, err := s.SavedAt(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, url
		FROM stations
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c := radiogaga.NewCatalog()
	for rows.Next() {
		var name, url string
		if err := rows.Scan(&name, &url); err != nil {
			return nil, err
		}
		c.Add(name, url)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// SavedAt returns when the catalog was last saved.
// Returns ENOTFOUND if no catalog has been saved.
func (s *CatalogStore) SavedAt(ctx context.Context) (time.Time, error) {
	var savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM catalog WHERE id = 1`).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, radiogaga.Errorf(radiogaga.ENOTFOUND, "no catalog saved")
	}
	if err != nil {
		return time.Time{}, err
	}
	return parseRFC3339(savedAt, "saved_at")
}

// Save replaces all stored stations with c in a single transaction.
func (s *CatalogStore) Save(ctx context.Context, c *radiogaga.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stations`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO stations (name, url, position) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, st := range c.Stations() {
		if _, err := stmt.ExecContext(ctx, st.Name, st.URL, i); err != nil {
			return fmt.Errorf("failed to save station %q: %w", st.Name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO catalog (id, saved_at) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET saved_at = excluded.saved_at
	`, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}
