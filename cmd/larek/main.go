package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/larkhq/larek/internal/config"
	"github.com/larkhq/larek/internal/events"
	"github.com/larkhq/larek/internal/shopapi"
	"github.com/larkhq/larek/internal/store"
	"github.com/larkhq/larek/internal/tui"
)

func main() {
	validate := flag.Bool("validate", false, "run a non-TUI startup check and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Stray log writes would corrupt the alt screen, so logs go to a file
	// under LAREK_DEBUG and nowhere otherwise.
	if os.Getenv("LAREK_DEBUG") != "" {
		f, err := tea.LogToFile("larek-debug.log", "larek")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	} else if !*validate {
		log.SetOutput(io.Discard)
	}

	source, err := buildSource(cfg)
	if err != nil {
		log.Fatalf("shop source: %v", err)
	}

	if *validate {
		if err := runStartupHarness(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "validate: %v\n", err)
			os.Exit(1)
		}
		return
	}

	bus := events.New(events.WithErrorHook(func(topic string, recovered any) {
		log.Printf("handler panic on %q: %v", topic, recovered)
	}))
	st := store.New(bus, store.Labels{
		Currency:   cfg.UI.Currency,
		NotForSale: cfg.UI.NotForSale,
	})
	app := tui.New(bus, st, source)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// buildSource picks the HTTP client when a backend is configured and the
// local TOML catalog otherwise.
func buildSource(cfg config.Config) (shopapi.Source, error) {
	if cfg.API.BaseURL != "" {
		return shopapi.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second), nil
	}
	if cfg.Catalog.Path != "" {
		return shopapi.NewLocalSource(cfg.Catalog.Path)
	}
	return shopapi.NewLocalSourceFromItems(demoCatalog()), nil
}

// demoCatalog backs the out-of-the-box run when neither a backend nor a
// catalog file is configured.
func demoCatalog() []store.Item {
	price := func(v float64) *float64 { return &v }
	return []store.Item{
		{ID: "bug-magnet", Title: "Bug magnet", Description: "Attracts edge cases from three modules away", Category: "other", Price: price(150)},
		{ID: "rubber-duck", Title: "Rubber duck", Description: "Explains your own code back to you", Category: "soft-skill", Price: price(750)},
		{ID: "backend-keys", Title: "Backend keys", Description: "Unlocks any API, warranty void", Category: "hard-skill", Price: price(1200)},
		{ID: "focus-frame", Title: "Focus frame", Description: "One notification at a time", Category: "button", Price: price(400)},
		{ID: "mentor-hour", Title: "Mentor hour", Description: "Sixty minutes of someone who has seen it before", Category: "additional", Price: price(900)},
		{ID: "golden-linter", Title: "Golden linter", Description: "Cannot be bought, only earned", Category: "hard-skill", Price: nil},
	}
}
