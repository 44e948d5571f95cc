package source

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Mock backend defaults, matching the reference synthetic source.
const (
	DefaultMockMinLatency  = 1000 * time.Millisecond
	DefaultMockMaxLatency  = 1500 * time.Millisecond
	DefaultMockFailureRate = 0.10
)

// WeatherData is the payload for the weather widget type.
type WeatherData struct {
	City      string
	Condition string
	TempC     int
}

// ClockData is the payload for the clock widget type.
type ClockData struct {
	Zone string
	Now  time.Time
}

// QuoteData is the payload for the quote widget type.
type QuoteData struct {
	Text   string
	Author string
}

// CryptoData is the payload for the crypto widget type.
type CryptoData struct {
	Symbol    string
	PriceUSD  float64
	Change24h float64
}

// MockSource synthesizes payloads with configurable latency and a fixed
// failure probability, standing in for a real network backend.
type MockSource struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockSource returns a source with the given latency band and failure
// rate. Zero latencies and a negative rate fall back to defaults; tests
// pass explicit zeros via NewMockSourceSeeded instead.
func NewMockSource(minLatency, maxLatency time.Duration, failureRate float64) *MockSource {
	if minLatency <= 0 {
		minLatency = DefaultMockMinLatency
	}
	if maxLatency < minLatency {
		maxLatency = minLatency
	}
	if failureRate < 0 {
		failureRate = DefaultMockFailureRate
	}
	return &MockSource{
		MinLatency:  minLatency,
		MaxLatency:  maxLatency,
		FailureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewMockSourceSeeded returns a deterministic, zero-latency source for
// tests.
func NewMockSourceSeeded(seed int64, failureRate float64) *MockSource {
	return &MockSource{
		FailureRate: failureRate,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Fetch sleeps within the latency band (honoring ctx), fails with the
// configured probability, and otherwise returns a typed payload for the
// widget type.
func (s *MockSource) Fetch(ctx context.Context, widgetType string) (any, error) {
	if delay := s.delay(); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	if s.roll() < s.FailureRate {
		return nil, fmt.Errorf("%s backend unavailable", widgetType)
	}
	return s.payload(widgetType), nil
}

func (s *MockSource) delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.MaxLatency <= s.MinLatency {
		return s.MinLatency
	}
	return s.MinLatency + time.Duration(s.rng.Int63n(int64(s.MaxLatency-s.MinLatency)))
}

func (s *MockSource) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *MockSource) payload(widgetType string) any {
	switch widgetType {
	case "weather":
		conditions := []string{"Clear", "Cloudy", "Showers", "Windy", "Storms"}
		return WeatherData{
			City:      "Melbourne",
			Condition: conditions[s.intn(len(conditions))],
			TempC:     8 + s.intn(25),
		}
	case "clock":
		return ClockData{Zone: "Local", Now: time.Now()}
	case "quote":
		quotes := []QuoteData{
			{Text: "Simplicity is prerequisite for reliability.", Author: "Dijkstra"},
			{Text: "Make it work, make it right, make it fast.", Author: "Kent Beck"},
			{Text: "A little copying is better than a little dependency.", Author: "Go proverb"},
			{Text: "Clear is better than clever.", Author: "Go proverb"},
		}
		return quotes[s.intn(len(quotes))]
	case "crypto":
		return CryptoData{
			Symbol:    "BTC",
			PriceUSD:  60000 + float64(s.intn(20000)),
			Change24h: float64(s.intn(1200)-600) / 100,
		}
	default:
		return fmt.Sprintf("%s data @ %s", widgetType, time.Now().Format(time.Kitchen))
	}
}

func (s *MockSource) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
