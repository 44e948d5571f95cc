// Package engine owns widget lifecycle state for the dashboard. All list
// mutations flow through the pure Reduce function; the Orchestrator mediates
// asynchronous fetches through the cache and per-widget debouncers.
package engine

import (
	"time"

	"github.com/google/uuid"
)

// Widget is one dashboard tile instance. Values are treated as immutable:
// every state change produces a fresh Widget inside a fresh slice, so a
// consumer can detect "did this widget change" by comparing values.
type Widget struct {
	ID        string
	Type      string
	Data      any       // last successful payload; nil before first fetch
	Loading   bool      // true only while a fetch is outstanding
	Err       string    // last fetch failure; "" when none
	CreatedAt time.Time
}

// NewWidget constructs a widget for the given type with zero fetch state.
func NewWidget(widgetType string) Widget {
	return Widget{
		ID:        uuid.NewString(),
		Type:      widgetType,
		CreatedAt: time.Now().UTC(),
	}
}

// WidgetByID returns the index of the widget with the given id, or -1.
func WidgetByID(list []Widget, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
