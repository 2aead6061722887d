package engine

import (
	"database/sql"
	"database/sql/driver"
	"encoding/hex"
	"fmt"

	sqlite "modernc.org/sqlite"
)

// RegisterHashFunctions registers fh_hex and fh_len with the driver so they
// are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
func RegisterHashFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("fh_hex", 1, fhHexImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("fh_len", 1, fhLenImpl)
	return nil
}

func asHash(arg driver.Value) ([]byte, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("fh: unsupported argument type %T for hash; want BLOB", arg)
	}
}

// fhHexImpl renders a stored hash as a lower-case hex string, so a 32-byte
// fuzzy hash shows up as 64 characters in query output.
func fhHexImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("fh_hex: expected 1 argument, got %d", len(args))
	}
	h, err := asHash(args[0])
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, nil
	}
	return hex.EncodeToString(h), nil
}

func fhLenImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("fh_len: expected 1 argument, got %d", len(args))
	}
	h, err := asHash(args[0])
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, nil
	}
	return int64(len(h)), nil
}
