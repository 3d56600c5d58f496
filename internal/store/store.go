// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted records in a SQLite index for search and
// export.
// Implements: prd005-index (R1-R4);
//
//	docs/ARCHITECTURE § Index.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperscan/pkg/types"
)

const defaultMaxResults = 20

// ErrNotFound is returned when no record matches a filename.
var ErrNotFound = errors.New("record not found")

// Store manages the record index database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the SQLite database at cfg.Path and creates the
// schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS records (
			filename TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			abstract TEXT NOT NULL,
			abstract_found INTEGER NOT NULL,
			sections TEXT,
			source_path TEXT,
			extracted_at TEXT,
			run_id TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Put inserts rec or replaces the record with the same filename.
func (s *Store) Put(ctx context.Context, runID string, rec types.Record) error {
	sections, err := json.Marshal(rec.Sections)
	if err != nil {
		return fmt.Errorf("marshaling sections: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (filename, title, abstract, abstract_found, sections, source_path, extracted_at, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(filename) DO UPDATE SET
			title = excluded.title,
			abstract = excluded.abstract,
			abstract_found = excluded.abstract_found,
			sections = excluded.sections,
			source_path = excluded.source_path,
			extracted_at = excluded.extracted_at,
			run_id = excluded.run_id`,
		rec.Filename, rec.Title, rec.Abstract, rec.AbstractFound, string(sections),
		rec.SourcePath, rec.ExtractedAt.UTC().Format(time.RFC3339Nano), runID,
	)
	if err != nil {
		return fmt.Errorf("storing %s: %w", rec.Filename, err)
	}
	return nil
}

// Get returns the record stored for filename.
func (s *Store) Get(ctx context.Context, filename string) (types.Record, error) {
	row := s.db.QueryRowContext(ctx, selectRecord+` WHERE filename = ?`, filename)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Record{}, fmt.Errorf("%s: %w", filename, ErrNotFound)
	}
	return rec, err
}

// SearchOptions holds parameters for index queries.
type SearchOptions struct {
	// Query matches title or abstract as a case-insensitive substring.
	Query string

	// Missing selects only records whose abstract was not found.
	Missing bool

	// RunID selects records written by one analysis run.
	RunID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Search returns records matching opts, ordered by filename.
func (s *Store) Search(ctx context.Context, opts SearchOptions) ([]types.Record, error) {
	limit := opts.MaxResults
	if limit <= 0 {
		limit = s.maxResults
	}

	var (
		where []string
		args  []any
	)
	if opts.Query != "" {
		pattern := "%" + escapeLike(strings.ToLower(opts.Query)) + "%"
		where = append(where, `(lower(title) LIKE ? ESCAPE '\' OR lower(abstract) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if opts.Missing {
		where = append(where, `abstract_found = 0`)
	}
	if opts.RunID != "" {
		where = append(where, `run_id = ?`)
		args = append(args, opts.RunID)
	}

	q := selectRecord
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY filename LIMIT ?"
	args = append(args, limit)

	return s.query(ctx, q, args...)
}

// All returns every stored record ordered by filename.
func (s *Store) All(ctx context.Context) ([]types.Record, error) {
	return s.query(ctx, selectRecord+" ORDER BY filename")
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]types.Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var out []types.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

const selectRecord = `SELECT filename, title, abstract, abstract_found, sections, source_path, extracted_at FROM records`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (types.Record, error) {
	var (
		rec         types.Record
		sections    sql.NullString
		sourcePath  sql.NullString
		extractedAt sql.NullString
	)
	if err := row.Scan(&rec.Filename, &rec.Title, &rec.Abstract, &rec.AbstractFound, &sections, &sourcePath, &extractedAt); err != nil {
		return types.Record{}, err
	}
	if sections.Valid && sections.String != "" && sections.String != "null" {
		if err := json.Unmarshal([]byte(sections.String), &rec.Sections); err != nil {
			return types.Record{}, fmt.Errorf("decoding sections of %s: %w", rec.Filename, err)
		}
	}
	rec.SourcePath = sourcePath.String
	if extractedAt.Valid {
		if t, err := time.Parse(time.RFC3339Nano, extractedAt.String); err == nil {
			rec.ExtractedAt = t
		}
	}
	return rec, nil
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
