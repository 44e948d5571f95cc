package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/jaskboard/internal/database/repository"
)

// SeedDemoEvents ensures a fresh database has activity data to roll up.
// It is idempotent and safe to run on every startup.
func SeedDemoEvents(ctx context.Context, db *sql.DB) error {
	repo := repository.NewEventRepo(db)
	existing, err := repo.Count(ctx)
	if err == nil && existing > 0 {
		return nil
	}
	kinds := []struct {
		kind  string
		count int
	}{
		{"deploy", 4},
		{"alert", 2},
		{"build", 9},
		{"commit", 17},
		{"review", 6},
	}
	now := Now()
	return WithTx(db, func(tx *sql.Tx) error {
		for _, k := range kinds {
			for i := 0; i < k.count; i++ {
				seed := fmt.Sprintf("event:%s:%d", k.kind, i)
				_, err := tx.ExecContext(ctx, `
				INSERT INTO events(id, kind, detail, occurred_at)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(id) DO NOTHING;
				`,
					uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String(),
					k.kind,
					fmt.Sprintf("%s #%d", k.kind, i+1),
					now.Add(-time.Duration(i)*time.Hour),
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
