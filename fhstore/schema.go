package fhstore

import (
	"database/sql"
)

const fuzzyHashesSchema = `
CREATE TABLE IF NOT EXISTS fuzzy_hashes (
    fh BLOB PRIMARY KEY,
    type TEXT
);
`

// EnsureSchema creates the fuzzy_hashes table in the provided database if it
// does not already exist. The BLOB primary key gives uniqueness enforcement
// at insert time, so a duplicate hash fails instead of being dropped.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(fuzzyHashesSchema)
	return err
}
