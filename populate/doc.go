// Package populate implements the fixture-generation lifecycle: reset the
// target database file, create the fuzzy_hashes schema, synthesize a random
// population, and persist it in a single committed batch. Each run owns the
// target file exclusively and replaces whatever was there before.
package populate
