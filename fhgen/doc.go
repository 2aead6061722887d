// Package fhgen synthesizes fuzzy-hash fixture records. Hashes are drawn
// from a uniform random source rather than computed from any input; only
// their storage shape matters to consumers.
package fhgen
