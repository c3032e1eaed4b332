// Package history stores past BMI calculations in a SQLite journal.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/bmi/internal/bmi"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	height     REAL    NOT NULL,
	weight     REAL    NOT NULL,
	value      REAL    NOT NULL,
	bmi        TEXT    NOT NULL,
	category   TEXT    NOT NULL,
	created_at INTEGER NOT NULL
)`

// Entry is one recorded calculation.
type Entry struct {
	ID        int64
	Height    float64 // cm
	Weight    float64 // kg
	Value     float64
	BMI       string
	Category  bmi.Category
	CreatedAt time.Time
}

// NewEntry builds an entry from a successful calculation.
func NewEntry(res bmi.Result, at time.Time) Entry {
	return Entry{
		Height:    res.Height,
		Weight:    res.Weight,
		Value:     res.Value,
		BMI:       res.BMI,
		Category:  res.Category,
		CreatedAt: at,
	}
}

// Store is a SQLite-backed calculation journal.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the journal at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record appends an entry and returns its ID.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO calculations (height, weight, value, bmi, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Height, e.Weight, e.Value, e.BMI, string(e.Category), e.CreatedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("recording calculation: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, height, weight, value, bmi, category, created_at
		FROM calculations
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying calculations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			category string
			created  int64
		)
		if err := rows.Scan(&e.ID, &e.Height, &e.Weight, &e.Value, &e.BMI, &category, &created); err != nil {
			return nil, fmt.Errorf("scanning calculation: %w", err)
		}
		e.Category = bmi.Category(category)
		e.CreatedAt = time.Unix(0, created)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Clear removes all entries and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calculations`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
