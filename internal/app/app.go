// Package app initializes and holds long-lived application services,
// acting as a dependency injection container for the CLI commands.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/recruitscout/recruitscout/internal/api"
	"github.com/recruitscout/recruitscout/internal/clock/system"
	"github.com/recruitscout/recruitscout/internal/config"
	collyfetcher "github.com/recruitscout/recruitscout/internal/fetcher/colly"
	"github.com/recruitscout/recruitscout/internal/fetcher/headless"
	"github.com/recruitscout/recruitscout/internal/harvest"
	"github.com/recruitscout/recruitscout/internal/jobs"
	"github.com/recruitscout/recruitscout/internal/logging"
	"github.com/recruitscout/recruitscout/internal/metrics"
	"github.com/recruitscout/recruitscout/internal/source"
	"github.com/recruitscout/recruitscout/internal/source/arbeitnow"
	"github.com/recruitscout/recruitscout/internal/source/berlinstartup"
	"github.com/recruitscout/recruitscout/internal/source/job4good"
	"github.com/recruitscout/recruitscout/internal/source/turijobs"
)

// App holds the shared services for one process: configuration, logger,
// and the fully wired harvester. It is built once at startup and handed
// to the commands that need it.
type App struct {
	cfg       config.Config
	logger    *zap.Logger
	harvester *harvest.Harvester
	clock     jobs.Clock
}

// New loads configuration from cfgPath (empty means defaults plus
// environment), builds the logger, and wires every source adapter into a
// harvester. It fails fast if any service cannot be initialized.
func New(cfgPath string) (*App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	metrics.Init()

	clk := system.New()

	httpClient := collyfetcher.New(collyfetcher.Config{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   cfg.HTTPTimeout(),
	})
	renderer := headless.New(headless.Config{
		UserAgent:         cfg.HTTP.UserAgent,
		NavigationTimeout: cfg.NavTimeout(),
		SettleDelay:       cfg.SettleDelay(),
	})

	adapters := []jobs.Adapter{
		arbeitnow.New(arbeitnow.Config{
			URL: cfg.Sources.Arbeitnow.URL,
		}, httpClient, logger),
		berlinstartup.New(berlinstartup.Config{
			URL:               cfg.Sources.BerlinStartupJobs.URL,
			ContainerSelector: cfg.Sources.BerlinStartupJobs.ContainerSelector,
			TitleSelector:     cfg.Sources.BerlinStartupJobs.TitleSelector,
			Cap:               cfg.Sources.BerlinStartupJobs.Cap,
		}, renderer, clk, logger),
		job4good.New(job4good.Config{
			URL: cfg.Sources.Job4Good.URL,
			Scan: source.ScanConfig{
				Cap:         cfg.Sources.Job4Good.Cap,
				MinTitleLen: cfg.Sources.Job4Good.MinTitleLen,
				Denylist:    cfg.Sources.Job4Good.Denylist,
			},
		}, renderer, clk, logger),
		turijobs.New(turijobs.Config{
			URL: cfg.Sources.Turijobs.URL,
			Scan: source.ScanConfig{
				Cap:         cfg.Sources.Turijobs.Cap,
				MinTitleLen: cfg.Sources.Turijobs.MinTitleLen,
				Denylist:    cfg.Sources.Turijobs.Denylist,
			},
		}, renderer, clk, logger),
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		harvester: harvest.New(adapters, logger),
		clock:     clk,
	}, nil
}

// Config returns the loaded configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// Logger returns the shared zap logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Harvester returns the wired harvest pipeline.
func (a *App) Harvester() *harvest.Harvester {
	return a.harvester
}

// Clock returns the shared clock.
func (a *App) Clock() jobs.Clock {
	return a.clock
}

// Sources describes the configured job boards for the HTTP index page.
func (a *App) Sources() []api.SourceInfo {
	return []api.SourceInfo{
		{ID: jobs.SourceArbeitnow, Name: "Arbeitnow", URL: a.cfg.Sources.Arbeitnow.URL},
		{ID: jobs.SourceBerlinStartupJobs, Name: "Berlin Startup Jobs", URL: a.cfg.Sources.BerlinStartupJobs.URL},
		{ID: jobs.SourceJob4Good, Name: "Job4Good", URL: a.cfg.Sources.Job4Good.URL},
		{ID: jobs.SourceTurijobs, Name: "TuriJobs", URL: a.cfg.Sources.Turijobs.URL},
	}
}

// Close flushes buffered log entries. Safe to call once at shutdown.
func (a *App) Close() {
	_ = a.logger.Sync()
}
