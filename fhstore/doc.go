// Package fhstore defines the fuzzy-hash fixture record model and
// SQLite-backed utilities used by this project. It includes:
//   - Record model and Store interface
//   - SQLiteStore: durable storage for fixture records
//   - Schema helpers to create the fuzzy_hashes table
package fhstore
