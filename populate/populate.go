package populate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fuzzyhash/sqlite-fixture/engine"
	"github.com/fuzzyhash/sqlite-fixture/fhgen"
	"github.com/fuzzyhash/sqlite-fixture/fhstore"
)

const (
	// DefaultPath is the target database file used when Options.Path is empty.
	DefaultPath = "test_db.db"

	// DefaultCount is the population size used by the populate command.
	DefaultCount = 10000
)

// Options configures a fixture-generation run.
type Options struct {
	// Path is the target database file. Empty means DefaultPath.
	Path string

	// Count is the number of records to generate. Zero is valid and yields
	// a database with the schema but no rows. Negative is an error.
	Count int

	// Label is the algorithm tag attached to every record. Empty means
	// fhgen.LabelNilsimsa.
	Label string
}

// Run generates a fresh fixture database at opts.Path containing exactly
// opts.Count random fuzzy-hash records.
//
// Any pre-existing file at the path is removed first; the run never merges
// with or appends to earlier fixtures. All records are written in a single
// transaction, so a failure anywhere leaves no partially committed
// population behind.
func Run(ctx context.Context, opts Options) error {
	if opts.Count < 0 {
		return fmt.Errorf("populate: count %d is negative", opts.Count)
	}
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("populate: reset %s: %w", path, err)
	}

	db, err := engine.Open(path)
	if err != nil {
		return fmt.Errorf("populate: open %s: %w", path, err)
	}
	defer db.Close()

	store, err := fhstore.NewSQLiteStore(db)
	if err != nil {
		return err
	}

	recs := fhgen.Records(opts.Count, opts.Label)
	if err := store.AddRecords(ctx, recs); err != nil {
		return fmt.Errorf("populate: insert %d records: %w", opts.Count, err)
	}
	return nil
}
