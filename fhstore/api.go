package fhstore

import (
	"context"
)

// HashSize is the length in bytes of a stored fuzzy hash. Nilsimsa digests
// are 256 bits, and every record in a fixture carries a hash of exactly
// this size.
const HashSize = 32

// Record represents a single fuzzy-hash fixture row. The hash bytes act as
// the primary key; the label names the algorithm the value nominally
// represents.
type Record struct {
	// FH holds the raw hash bytes. Must be exactly HashSize bytes on insert.
	FH []byte

	// Type is the fuzzy-hash algorithm label, e.g. "nilsimsa".
	Type string
}

// Store defines the fixture storage API. Implementations in this module use
// SQLite for durable storage.
type Store interface {
	// AddRecords inserts records into the store in a single transaction.
	// Either every record is committed or none is; a duplicate hash fails
	// the whole batch rather than silently dropping a row.
	AddRecords(ctx context.Context, recs []Record) error

	// Count reports the number of records currently stored.
	Count(ctx context.Context) (int64, error)

	// List returns up to limit records in insertion order. A limit <= 0
	// returns all records.
	List(ctx context.Context, limit int) ([]Record, error)
}
