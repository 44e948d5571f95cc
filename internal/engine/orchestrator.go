package engine

import (
	"context"
	"sync"
	"time"

	"github.com/jask/jaskboard/internal/cache"
	"github.com/jask/jaskboard/internal/source"
)

// DefaultFetchTimeout bounds a single backend fetch so a hung source cannot
// leave a widget loading forever.
const DefaultFetchTimeout = 10 * time.Second

// OrchestratorConfig wires an Orchestrator.
type OrchestratorConfig struct {
	Store          *cache.Store
	Catalog        *source.Catalog
	DebounceWindow time.Duration // refresh collapse window; 0 = DefaultDebounce
	FetchTimeout   time.Duration // per-fetch bound; 0 = DefaultFetchTimeout
}

// Orchestrator owns the authoritative widget list. Every mutation goes
// through Reduce under a single mutex, so dispatches apply in issue order
// even though fetch completions arrive from their own goroutines. After
// each dispatch a snapshot is emitted to subscribers.
type Orchestrator struct {
	mu       sync.Mutex
	widgets  []Widget
	store    *cache.Store
	catalog  *source.Catalog
	window   time.Duration
	timeout  time.Duration
	debounce map[string]*Debouncer // widget id -> refresh debouncer
	subs     []chan []Widget
	closed   bool
}

// NewOrchestrator returns an orchestrator with an empty widget list.
func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	window := cfg.DebounceWindow
	if window <= 0 {
		window = DefaultDebounce
	}
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	store := cfg.Store
	if store == nil {
		store = cache.New(cache.DefaultTTL)
	}
	return &Orchestrator{
		store:    store,
		catalog:  cfg.Catalog,
		window:   window,
		timeout:  timeout,
		debounce: make(map[string]*Debouncer),
	}
}

// Widgets returns a snapshot of the current list.
func (o *Orchestrator) Widgets() []Widget {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

// AddWidget validates widgetType against the catalog, appends a fresh
// widget, and starts an immediate fetch for it. Adds are never debounced.
// An unknown type rejects the add before any state changes; the returned
// error may carry a "did you mean" suggestion.
func (o *Orchestrator) AddWidget(widgetType string) (Widget, error) {
	if _, err := o.catalog.Resolve(widgetType); err != nil {
		return Widget{}, err
	}
	w := NewWidget(widgetType)
	o.dispatch(AddWidget(w))
	go o.fetchAndApply(w.Type, w.ID)
	return w, nil
}

// RemoveWidget drops the widget unconditionally. An in-flight fetch for it
// is not cancelled; its completion dispatch will target a missing id and
// reduce to a no-op. The widget's pending refresh debounce, if any, is
// cancelled so no timer outlives its widget.
func (o *Orchestrator) RemoveWidget(id string) {
	o.mu.Lock()
	if d, ok := o.debounce[id]; ok {
		d.Cancel()
		delete(o.debounce, id)
	}
	o.mu.Unlock()
	o.dispatch(RemoveWidget(id))
}

// RefreshWidget requests fresh data for w. Repeated calls within the
// debounce window collapse into one fetch. A refresh against a stale
// snapshot of a removed widget is dropped; it must not recreate a
// debouncer or cache under a dead key.
func (o *Orchestrator) RefreshWidget(w Widget) {
	o.mu.Lock()
	if WidgetByID(o.widgets, w.ID) < 0 {
		o.mu.Unlock()
		return
	}
	d, ok := o.debounce[w.ID]
	if !ok {
		d = NewDebouncer(o.window)
		o.debounce[w.ID] = d
	}
	o.mu.Unlock()
	d.Call(func() { o.fetchAndApply(w.Type, w.ID) })
}

// ReorderWidgets moves the widget at from to position to. No debounce, no
// cache interaction; out-of-range indices clamp inside the reducer.
func (o *Orchestrator) ReorderWidgets(from, to int) {
	o.dispatch(ReorderWidgets(from, to))
}

// Subscribe returns a channel receiving a list snapshot after every
// dispatch. Slow subscribers lose intermediate snapshots, never the latest.
func (o *Orchestrator) Subscribe() <-chan []Widget {
	ch := make(chan []Widget, 16)
	o.mu.Lock()
	o.subs = append(o.subs, ch)
	o.mu.Unlock()
	return ch
}

// Close cancels pending debounce timers and closes subscriber channels.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	for id, d := range o.debounce {
		d.Cancel()
		delete(o.debounce, id)
	}
	for _, ch := range o.subs {
		close(ch)
	}
	o.subs = nil
}

// fetchAndApply resolves data for (widgetType, id): from cache when fresh,
// otherwise from the backend. A cache hit dispatches the payload directly
// and never visits the loading state. A miss sets loading, fetches under
// the configured timeout, caches on success, and converts failure into
// widget error state. Failed fetches are never cached.
func (o *Orchestrator) fetchAndApply(widgetType, id string) {
	key := cacheKey(widgetType, id)
	if v, ok := o.store.Get(key); ok {
		o.dispatch(UpdateWidgetData(id, v))
		return
	}

	src, err := o.catalog.Resolve(widgetType)
	if err != nil {
		o.dispatch(SetWidgetError(id, err.Error()))
		return
	}

	o.dispatch(SetWidgetLoading(id, true))

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()
	payload, err := src.Fetch(ctx, widgetType)
	if err != nil {
		o.dispatch(SetWidgetError(id, err.Error()))
		return
	}
	o.store.Set(key, payload)
	o.dispatch(UpdateWidgetData(id, payload))
}

// dispatch applies one action and notifies subscribers. The mutex is the
// serialization point standing in for the original single logical thread.
func (o *Orchestrator) dispatch(a Action) {
	o.mu.Lock()
	o.widgets = Reduce(o.widgets, a)
	if o.closed {
		o.mu.Unlock()
		return
	}
	snap := o.snapshotLocked()
	subs := o.subs
	o.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
			// Full buffer: drop the oldest snapshot so the latest wins.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func (o *Orchestrator) snapshotLocked() []Widget {
	snap := make([]Widget, len(o.widgets))
	copy(snap, o.widgets)
	return snap
}

func cacheKey(widgetType, id string) string {
	return widgetType + "/" + id
}
