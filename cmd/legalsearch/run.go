package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"legalsearch/internal/config"
	"legalsearch/internal/eventbus"
	"legalsearch/internal/logging"
	"legalsearch/internal/search"
	"legalsearch/internal/ui"
)

// overrides are the flag and environment values layered over the config file
type overrides struct {
	configPath   string
	endpoint     string
	logFile      string
	logLevel     string
	discardStale bool
}

// loadConfig reads the config file and applies overrides on top
func loadConfig(o overrides, bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(o.configPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}

	if o.endpoint != "" {
		cfg.Endpoint = o.endpoint
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.discardStale {
		cfg.DiscardStale = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSearcher builds the HTTP search client from config
func newSearcher(cfg *config.Config) (*search.Client, error) {
	return search.New(search.Options{
		Endpoint:      cfg.Endpoint,
		Timeout:       time.Duration(cfg.HTTP.Timeout),
		RatePerSecond: cfg.HTTP.RatePerSecond,
		UserAgent:     cfg.HTTP.UserAgent,
		StrictSchema:  cfg.StrictSchema,
	})
}

// logLifecycle records search lifecycle events published on the bus
func logLifecycle(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ConfigLoadedEvent)
		logging.Info("config loaded", "path", ev.Path, "endpoint", ev.Endpoint)
	})
	bus.Subscribe(eventbus.EventInspectorToggled, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.InspectorToggledEvent)
		logging.Debug("inspector toggled", "visible", ev.Visible)
	})
	bus.Subscribe(eventbus.EventSearchDiscarded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SearchDiscardedEvent)
		logging.Debug("stale response dropped", "seq", ev.Submission.Seq, "displayed", ev.Displayed)
	})
}

func run(parent context.Context, o overrides) error {
	if parent == nil {
		parent = context.Background()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := eventbus.New()
	defer bus.Close()

	// Log to stderr until the config says where the file lives
	logging.SetOutput(os.Stderr, "warn")
	logLifecycle(bus)

	cfg, err := loadConfig(o, bus)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	if err := logging.Init(cfg.LogFile, cfg.LogLevel); err != nil {
		return errors.Wrap(err, "opening log file")
	}
	defer func() {
		// Drain queued events before the file goes away
		bus.Close()
		logging.Close()
	}()

	searcher, err := newSearcher(cfg)
	if err != nil {
		return errors.Wrap(err, "creating search client")
	}

	logging.Info("starting", "version", version, "endpoint", cfg.Endpoint)

	model := ui.NewModel(ctx, cfg, searcher, bus)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "running program")
	}
	return nil
}
