// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists classified street eras in SQLite so export and
// rendering consumers can read results without re-running the pipeline.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/street-eras/pkg/types"
)

// Store manages the results SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the results database at cfg.Path, creating the
// schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = "street-eras.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS street_eras (
			city TEXT NOT NULL,
			street TEXT NOT NULL,
			era TEXT NOT NULL,
			context TEXT,
			classified_at TEXT NOT NULL,
			PRIMARY KEY (city, street)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_street_eras_era ON street_eras(era)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save upserts one run's mapping for a city. Re-running a city refreshes
// its rows in place; streets absent from the new mapping keep their old
// classification.
func (s *Store) Save(ctx context.Context, city string, mapping types.ResultMapping) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO street_eras (city, street, era, context, classified_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(city, street) DO UPDATE SET
			era=excluded.era, context=excluded.context, classified_at=excluded.classified_at`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for street, rec := range mapping {
		if _, err := stmt.ExecContext(ctx, city, street, string(rec.Era), rec.Context, now); err != nil {
			return fmt.Errorf("upserting %s: %w", street, err)
		}
	}
	return tx.Commit()
}

// Load returns the stored mapping for a city, sorted access by key being
// the caller's concern (the mapping itself is unordered).
func (s *Store) Load(ctx context.Context, city string) (types.ResultMapping, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT street, era, context FROM street_eras WHERE city = ?`, city)
	if err != nil {
		return nil, fmt.Errorf("querying street eras: %w", err)
	}
	defer rows.Close()

	mapping := make(types.ResultMapping)
	for rows.Next() {
		var street, eraLabel string
		var contextPhrase sql.NullString
		if err := rows.Scan(&street, &eraLabel, &contextPhrase); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		mapping[street] = types.StreetEraRecord{
			Era:     types.EraLabel(eraLabel),
			Context: contextPhrase.String,
		}
	}
	return mapping, rows.Err()
}

// Cities lists the cities present in the store, alphabetically.
func (s *Store) Cities(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT city FROM street_eras`)
	if err != nil {
		return nil, fmt.Errorf("querying cities: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities, rows.Err()
}
