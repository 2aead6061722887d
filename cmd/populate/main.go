// Command populate creates a fresh fuzzy-hash fixture database. It removes
// any existing file at the target path, recreates the fuzzy_hashes table,
// and fills it with randomly generated nilsimsa-labelled hashes.
package main

import (
	"context"
	"log"

	"github.com/fuzzyhash/sqlite-fixture/populate"
)

const (
	dbName         = "test_db.db"
	populationSize = 10_000
)

func main() {
	opts := populate.Options{Path: dbName, Count: populationSize}
	if err := populate.Run(context.Background(), opts); err != nil {
		log.Fatal(err)
	}
	log.Printf("populated %s with %d fuzzy hashes", dbName, populationSize)
}
