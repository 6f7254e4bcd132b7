package testutils

import (
	"context"
	"log"

	"github.com/itbasis/go-clock"
	"github.com/miraclmoore/dynasty-os-sub001/containers"
	"github.com/miraclmoore/dynasty-os-sub001/db"
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}
