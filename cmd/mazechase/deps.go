package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/account"
	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/chase"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/scores"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// loadLayout reads the maze config named by --config, or the default one.
func loadLayout() (chase.Layout, error) {
	cfg, err := config.LoadChase(flagConfig)
	if err != nil {
		return chase.Layout{}, err
	}
	layout, err := chase.NewLayout(cfg)
	if err != nil {
		return chase.Layout{}, fmt.Errorf("invalid maze config: %w", err)
	}
	return layout, nil
}

// services owns everything a TUI session runs against.
type services struct {
	store    *storage.Store
	notifier *scores.Notifier
	deps     tui.Deps
}

// openServices opens the database and starts the score notifier.
func openServices(logger *log.Logger) (*services, error) {
	layout, err := loadLayout()
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	notifier := scores.NewNotifier(store, logger.WithPrefix("scores"))
	notifier.Start()

	return &services{
		store:    store,
		notifier: notifier,
		deps: tui.Deps{
			Accounts: account.NewService(store, account.WithLogger(logger.WithPrefix("account"))),
			Scores:   store,
			Reporter: notifier,
			Layout:   layout,
			Logger:   logger,
			KeyHold:  flagKeyHold,
		},
	}, nil
}

// Close drains pending score updates, then closes the database.
func (s *services) Close() error {
	s.notifier.Close()
	return s.store.Close()
}
