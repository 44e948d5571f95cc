// Package source defines the data backends widgets fetch from and the
// catalog of known widget types. The engine depends only on Fetch; latency
// and payload shape are backend concerns.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Source fetches the payload for a widget type. Implementations decide
// latency and payload shape; a failed fetch returns a descriptive error.
type Source interface {
	Fetch(ctx context.Context, widgetType string) (any, error)
}

// Entry describes one known widget type.
type Entry struct {
	Type   string
	Title  string
	Source Source
}

// Catalog is the registry of known widget types. Adds are validated against
// it before any widget state exists.
type Catalog struct {
	entries map[string]Entry
	order   []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Register adds or replaces an entry. Types are case-insensitive.
func (c *Catalog) Register(e Entry) {
	key := normalizeType(e.Type)
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	e.Type = key
	c.entries[key] = e
}

// Resolve returns the source for widgetType, or an *UnknownTypeError
// carrying the closest known type when none matches.
func (c *Catalog) Resolve(widgetType string) (Source, error) {
	key := normalizeType(widgetType)
	if e, ok := c.entries[key]; ok {
		return e.Source, nil
	}
	return nil, &UnknownTypeError{Type: widgetType, Suggestion: c.closest(key)}
}

// Title returns the display title for widgetType, falling back to the raw
// type for unknown values.
func (c *Catalog) Title(widgetType string) string {
	if e, ok := c.entries[normalizeType(widgetType)]; ok {
		return e.Title
	}
	return widgetType
}

// Entries lists known types in registration order, for pickers.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.entries[key])
	}
	return out
}

// closest returns the registered type nearest to key by edit distance, or
// "" when nothing is within suggestion range.
func (c *Catalog) closest(key string) string {
	const maxDistance = 3
	best, bestDist := "", maxDistance+1
	for _, candidate := range c.order {
		if d := levenshtein.ComputeDistance(key, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

func normalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// UnknownTypeError rejects an add for a type outside the catalog.
type UnknownTypeError struct {
	Type       string
	Suggestion string
}

func (e *UnknownTypeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown widget type %q (did you mean %q?)", e.Type, e.Suggestion)
	}
	return fmt.Sprintf("unknown widget type %q", e.Type)
}
