package source

import (
	"context"
	"time"

	"github.com/jask/jaskboard/internal/database/repository"
)

// DefaultActivityWindow is how far back the activity rollup looks.
const DefaultActivityWindow = 24 * time.Hour

// ActivityData is the payload for the activity widget type: event counts
// per kind over the lookback window.
type ActivityData struct {
	Window time.Duration
	Counts []repository.KindCount
}

// MetricsSource serves the activity widget from the local event store.
type MetricsSource struct {
	Events *repository.EventRepo
	Window time.Duration
	now    func() time.Time
}

// NewMetricsSource returns a source rolling up events over the default
// window.
func NewMetricsSource(events *repository.EventRepo) *MetricsSource {
	return &MetricsSource{Events: events, Window: DefaultActivityWindow, now: time.Now}
}

func (s *MetricsSource) Fetch(ctx context.Context, widgetType string) (any, error) {
	window := s.Window
	if window <= 0 {
		window = DefaultActivityWindow
	}
	since := s.now().Add(-window)
	counts, err := s.Events.CountByKind(ctx, since)
	if err != nil {
		return nil, err
	}
	return ActivityData{Window: window, Counts: counts}, nil
}
