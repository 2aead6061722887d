// Package fhutil provides convenience helpers for inspecting a populated
// fixture database through a plain *sql.DB, without going through the
// fhstore API. The helpers are intended for verification harnesses and ad
// hoc checks against generated fixtures.
package fhutil

import (
	"context"
	"database/sql"
	"fmt"
)

// CountRecords reports the number of rows in the fuzzy_hashes table.
func CountRecords(ctx context.Context, db *sql.DB) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("fhutil: db is nil")
	}
	var n int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fuzzy_hashes`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SampleHex returns up to limit stored hashes as lower-case hex strings in
// insertion order, using the fh_hex SQL function. A 32-byte hash renders as
// 64 characters. When limit <= 0, all hashes are returned.
//
// engine.RegisterHashFunctions must have been called before the connection
// backing db was opened; otherwise the query fails with an unknown-function
// error.
func SampleHex(ctx context.Context, db *sql.DB, limit int) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("fhutil: db is nil")
	}

	base := `SELECT fh_hex(fh) FROM fuzzy_hashes ORDER BY rowid`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = db.QueryContext(ctx, base+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, base)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
