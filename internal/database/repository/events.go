package repository

import (
	"context"
	"database/sql"
	"time"
)

// Event represents an event row.
type Event struct {
	ID         string
	Kind       string
	Detail     string
	OccurredAt time.Time
}

// KindCount is one row of an activity rollup.
type KindCount struct {
	Kind  string
	Count int
}

// EventRepo handles events.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

func (r *EventRepo) Insert(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO events(id, kind, detail, occurred_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO NOTHING;
	`, e.ID, e.Kind, e.Detail, e.OccurredAt)
	return err
}

// CountByKind rolls up events at or after since, most frequent kind first.
func (r *EventRepo) CountByKind(ctx context.Context, since time.Time) ([]KindCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT kind, COUNT(*) FROM events
	WHERE occurred_at >= ?
	GROUP BY kind
	ORDER BY COUNT(*) DESC, kind`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []KindCount
	for rows.Next() {
		var kc KindCount
		if err := rows.Scan(&kc.Kind, &kc.Count); err != nil {
			return nil, err
		}
		out = append(out, kc)
	}
	return out, rows.Err()
}

func (r *EventRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}
