package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/jask/jaskboard/internal/database/repository"
)

// testDB opens a migrated temporary database.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jaskboard-test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func TestMigrateCreatesEventsTable(t *testing.T) {
	db := testDB(t)
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='events'`).Scan(&count)
	if err != nil {
		t.Fatalf("check table: %v", err)
	}
	if count != 1 {
		t.Fatal("events table missing after migrate")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestSeedDemoEventsIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := SeedDemoEvents(ctx, db); err != nil {
		t.Fatalf("SeedDemoEvents: %v", err)
	}
	repo := repository.NewEventRepo(db)
	first, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if first == 0 {
		t.Fatal("seed inserted nothing")
	}

	if err := SeedDemoEvents(ctx, db); err != nil {
		t.Fatalf("second SeedDemoEvents: %v", err)
	}
	second, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if second != first {
		t.Fatalf("count = %d after reseed, want %d", second, first)
	}
}

func TestEventRepoCountByKind(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := repository.NewEventRepo(db)
	now := Now()

	rows := []repository.Event{
		{ID: "e1", Kind: "deploy", OccurredAt: now},
		{ID: "e2", Kind: "deploy", OccurredAt: now.Add(-time.Hour)},
		{ID: "e3", Kind: "alert", OccurredAt: now},
		{ID: "e4", Kind: "deploy", OccurredAt: now.Add(-48 * time.Hour)}, // outside window
	}
	for _, e := range rows {
		if err := repo.Insert(ctx, e); err != nil {
			t.Fatalf("Insert %s: %v", e.ID, err)
		}
	}

	counts, err := repo.CountByKind(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("CountByKind: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("len(counts) = %d, want 2", len(counts))
	}
	if counts[0].Kind != "deploy" || counts[0].Count != 2 {
		t.Fatalf("counts[0] = %+v, want deploy 2", counts[0])
	}
	if counts[1].Kind != "alert" || counts[1].Count != 1 {
		t.Fatalf("counts[1] = %+v, want alert 1", counts[1])
	}
}

func TestEventRepoInsertIgnoresDuplicateID(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := repository.NewEventRepo(db)

	e := repository.Event{ID: "dup", Kind: "build", OccurredAt: Now()}
	if err := repo.Insert(ctx, e); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := repo.Insert(ctx, e); err != nil {
		t.Fatalf("duplicate Insert: %v", err)
	}
	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}
