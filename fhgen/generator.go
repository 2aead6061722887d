package fhgen

import (
	"crypto/rand"

	"github.com/fuzzyhash/sqlite-fixture/fhstore"
)

// LabelNilsimsa is the algorithm label attached to generated records by
// default. Nilsimsa is never computed here; the label only tags the shape.
const LabelNilsimsa = "nilsimsa"

// RandomHash returns a uniformly random hash of fhstore.HashSize bytes.
// With 32 bytes of entropy per hash, collisions within any realistic
// fixture population are negligible.
func RandomHash() []byte {
	b := make([]byte, fhstore.HashSize)
	// crypto/rand.Read never returns an error on supported platforms.
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// Records generates n fixture records tagged with label. An empty label
// falls back to LabelNilsimsa. n <= 0 yields an empty slice.
func Records(n int, label string) []fhstore.Record {
	if label == "" {
		label = LabelNilsimsa
	}
	recs := make([]fhstore.Record, 0, max(n, 0))
	for i := 0; i < n; i++ {
		recs = append(recs, fhstore.Record{FH: RandomHash(), Type: label})
	}
	return recs
}
