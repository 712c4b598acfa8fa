// Package app provides application-level wiring and dependency injection
// for the governance explorer.
package app

import (
	"fmt"
	"log/slog"

	"governance-explorer/internal/config"
	"governance-explorer/internal/domain"
	"governance-explorer/internal/service/audit"
	"governance-explorer/internal/service/bundle"
	"governance-explorer/internal/source"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// Services groups the service pointers that the UI handler needs.
type Services struct {
	Bundles *bundle.Service
	History *audit.Service
	Catalog audit.Catalog
}

// App holds the fully-wired application. Store is exposed so main() can
// start and stop the background snapshot refresh.
type App struct {
	Services Services
	Store    *source.Store
}

// New wires the data source, snapshot store, and services from the provided
// deps. In offline mode the source reads local fixtures instead of the API.
func New(deps Deps) (*App, error) {
	cfg := deps.Cfg

	var (
		bundles domain.BundleSource
		events  domain.AuditEventSource
	)
	if cfg.Offline {
		fixture := source.NewFixture(cfg.FixtureDir)
		bundles, events = fixture, fixture
		deps.Logger.Info("offline mode: serving fixtures", "dir", cfg.FixtureDir)
	} else {
		client := source.NewClient(cfg.APIHost, cfg.APIKey, deps.Logger.With("component", "api-client"))
		bundles, events = client, client
	}

	store := source.NewStore(bundles, cfg.SnapshotTTL, cfg.BundleLimit, deps.Logger.With("component", "store"))

	catalog, err := audit.LoadCatalog(cfg.EventCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load event catalog: %w", err)
	}

	return &App{
		Services: Services{
			Bundles: bundle.NewService(store, cfg.BundleLimit),
			History: audit.NewService(events, cfg.EventLimit),
			Catalog: catalog,
		},
		Store: store,
	}, nil
}
