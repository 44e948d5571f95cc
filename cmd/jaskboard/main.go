package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskboard/internal/cache"
	"github.com/jask/jaskboard/internal/config"
	"github.com/jask/jaskboard/internal/database"
	"github.com/jask/jaskboard/internal/database/repository"
	"github.com/jask/jaskboard/internal/engine"
	"github.com/jask/jaskboard/internal/source"
	"github.com/jask/jaskboard/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := database.SeedDemoEvents(ctx, db); err != nil {
		log.Fatalf("seed events: %v", err)
	}

	mock := source.NewMockSource(cfg.Mock.MinLatency, cfg.Mock.MaxLatency, cfg.Mock.FailureRate)
	metrics := source.NewMetricsSource(repository.NewEventRepo(db))

	catalog := source.NewCatalog()
	catalog.Register(source.Entry{Type: "weather", Title: "Weather", Source: mock})
	catalog.Register(source.Entry{Type: "clock", Title: "Clock", Source: mock})
	catalog.Register(source.Entry{Type: "quote", Title: "Quote", Source: mock})
	catalog.Register(source.Entry{Type: "crypto", Title: "Crypto", Source: mock})
	catalog.Register(source.Entry{Type: "activity", Title: "Activity", Source: metrics})

	orch := engine.NewOrchestrator(engine.OrchestratorConfig{
		Store:          cache.New(cfg.Engine.CacheTTL),
		Catalog:        catalog,
		DebounceWindow: cfg.Engine.DebounceWindow,
		FetchTimeout:   cfg.Engine.FetchTimeout,
	})
	defer orch.Close()

	for _, widgetType := range cfg.UI.StartupWidgets {
		if _, err := orch.AddWidget(widgetType); err != nil {
			log.Printf("warn: skipping startup widget: %v", err)
		}
	}

	p := tea.NewProgram(tui.New(orch, catalog), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
