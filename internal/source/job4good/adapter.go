// Package job4good adapts the Job4Good listings page.
package job4good

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/recruitscout/recruitscout/internal/jobs"
	"github.com/recruitscout/recruitscout/internal/source"
)

// Website is the domain stamped on records from this source.
const Website = "job4good.it"

// DefaultURL is the public listings page.
const DefaultURL = "https://www.job4good.it/annunci-di-lavoro/"

// DefaultDenylist filters the site's navigation and boilerplate headings.
var DefaultDenylist = []string{
	"chi siamo", "privacy", "menu", "candidati", "aziende", "accedi",
	"home", "info", "servizi", "risorse", "formazione", "contatti",
	"job4good", "annunci",
}

// Config holds the adapter knobs.
type Config struct {
	URL  string
	Scan source.ScanConfig
}

// Adapter scrapes Job4Good through a headless renderer. The site has no
// stable listing markup, so it uses the generic container scan.
type Adapter struct {
	cfg      Config
	renderer source.Renderer
	clock    jobs.Clock
	logger   *zap.Logger
}

// New builds an Adapter.
func New(cfg Config, renderer source.Renderer, clock jobs.Clock, logger *zap.Logger) *Adapter {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if len(cfg.Scan.ContainerTags) == 0 {
		defaults := source.DefaultScanConfig()
		defaults.Denylist = DefaultDenylist
		if cfg.Scan.Cap > 0 {
			defaults.Cap = cfg.Scan.Cap
		}
		if len(cfg.Scan.Denylist) > 0 {
			defaults.Denylist = cfg.Scan.Denylist
		}
		if cfg.Scan.MinTitleLen > 0 {
			defaults.MinTitleLen = cfg.Scan.MinTitleLen
		}
		cfg.Scan = defaults
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{cfg: cfg, renderer: renderer, clock: clock, logger: logger}
}

// ID returns the source identifier.
func (a *Adapter) ID() string { return jobs.SourceJob4Good }

// Fetch renders the listings page and extracts candidates. Failures are
// logged and yield an empty result, never an error.
func (a *Adapter) Fetch(ctx context.Context) []jobs.Record {
	html, err := a.renderer.Render(ctx, a.cfg.URL)
	if err != nil {
		a.logger.Warn("job4good render failed", zap.String("url", a.cfg.URL), zap.Error(err))
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		a.logger.Warn("job4good parse failed", zap.Error(err))
		return nil
	}

	date := a.clock.Now().Format("2006-01-02")
	candidates := source.Scan(doc, a.cfg.Scan)
	records := make([]jobs.Record, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, jobs.Record{
			Title:      c.Title,
			Company:    jobs.ExtractCompany(c.FullText, c.Title),
			Category:   jobs.Categorize(c.Title),
			DatePosted: date,
			Status:     jobs.StatusActive,
			Website:    Website,
		})
	}
	a.logger.Debug("job4good fetch complete", zap.Int("records", len(records)))
	return records
}
