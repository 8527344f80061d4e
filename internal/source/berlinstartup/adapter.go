// Package berlinstartup adapts the Berlin Startup Jobs listing page.
package berlinstartup

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/recruitscout/recruitscout/internal/jobs"
	"github.com/recruitscout/recruitscout/internal/source"
)

// Website is the domain stamped on records from this source.
const Website = "berlinstartupjobs.com"

// DefaultURL is the engineering listings page.
const DefaultURL = "https://berlinstartupjobs.com/engineering/"

// Defaults for the site's listing markup. The board renders job cards
// client-side into containers with a stable class, so a class selector is
// usable here, unlike the generic-scan boards.
const (
	DefaultContainerSelector = "div.bjs-jlid__meta"
	DefaultTitleSelector     = "h4"
	DefaultCap               = 50
)

// Config holds the adapter knobs.
type Config struct {
	URL               string
	ContainerSelector string
	TitleSelector     string
	Cap               int
}

// Adapter scrapes Berlin Startup Jobs through a headless renderer.
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
	if cfg.ContainerSelector == "" {
		cfg.ContainerSelector = DefaultContainerSelector
	}
	if cfg.TitleSelector == "" {
		cfg.TitleSelector = DefaultTitleSelector
	}
	if cfg.Cap <= 0 {
		cfg.Cap = DefaultCap
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{cfg: cfg, renderer: renderer, clock: clock, logger: logger}
}

// ID returns the source identifier.
func (a *Adapter) ID() string { return jobs.SourceBerlinStartupJobs }

// Fetch renders the listing page and extracts job cards. Failures are
// logged and yield an empty result, never an error.
func (a *Adapter) Fetch(ctx context.Context) []jobs.Record {
	html, err := a.renderer.Render(ctx, a.cfg.URL)
	if err != nil {
		a.logger.Warn("berlinstartupjobs render failed", zap.String("url", a.cfg.URL), zap.Error(err))
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		a.logger.Warn("berlinstartupjobs parse failed", zap.Error(err))
		return nil
	}

	date := a.clock.Now().Format("2006-01-02")
	var records []jobs.Record
	doc.Find(a.cfg.ContainerSelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		title := strings.TrimSpace(card.Find(a.cfg.TitleSelector).First().Text())
		if title == "" {
			return true
		}
		records = append(records, jobs.Record{
			Title:      title,
			Company:    jobs.ExtractCompany(source.PipeText(card), title),
			Category:   jobs.Categorize(title),
			DatePosted: date,
			Status:     jobs.StatusActive,
			Website:    Website,
		})
		return len(records) < a.cfg.Cap
	})
	a.logger.Debug("berlinstartupjobs fetch complete", zap.Int("records", len(records)))
	return records
}
