package fhstore

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore is a minimal implementation of Store that uses a SQLite
// database for durable storage. It is write-once by convention: fixture
// populations are inserted in a single batch and never mutated afterwards.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the
// fuzzy_hashes schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("fhstore: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// AddRecords inserts records into the fuzzy_hashes table inside one
// transaction with a single commit point. Until the commit, external readers
// observe none of the batch; after it, all of it. A record whose hash is not
// exactly HashSize bytes fails the batch before touching the database.
func (s *SQLiteStore) AddRecords(ctx context.Context, recs []Record) error {
	if len(recs) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO fuzzy_hashes(fh, type) VALUES(?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range recs {
		if len(r.FH) != HashSize {
			return fmt.Errorf("fhstore: record %d has %d-byte hash, want %d", i, len(r.FH), HashSize)
		}
		if _, err := stmt.ExecContext(ctx, r.FH, r.Type); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Count reports the number of rows in the fuzzy_hashes table.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fuzzy_hashes`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// List returns up to limit records in insertion order. A limit <= 0 returns
// every record.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, `SELECT fh, type FROM fuzzy_hashes ORDER BY rowid LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, `SELECT fh, type FROM fuzzy_hashes ORDER BY rowid`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.FH, &r.Type); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
