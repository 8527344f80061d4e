// Package arbeitnow adapts the Arbeitnow job-board JSON API.
package arbeitnow

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	collyfetcher "github.com/recruitscout/recruitscout/internal/fetcher/colly"
	"github.com/recruitscout/recruitscout/internal/jobs"
)

// Website is the domain stamped on records from this source.
const Website = "arbeitnow.com"

// DefaultURL is the public job-board API endpoint.
const DefaultURL = "https://www.arbeitnow.com/api/job-board-api"

// Client executes the API request.
type Client interface {
	Fetch(ctx context.Context, url string) (collyfetcher.Response, error)
}

// Config holds the adapter knobs.
type Config struct {
	URL string
}

// Adapter fetches and normalizes Arbeitnow postings.
type Adapter struct {
	cfg    Config
	client Client
	logger *zap.Logger
}

// New builds an Adapter.
func New(cfg Config, client Client, logger *zap.Logger) *Adapter {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{cfg: cfg, client: client, logger: logger}
}

// ID returns the source identifier.
func (a *Adapter) ID() string { return jobs.SourceArbeitnow }

// Fetch pulls the API payload and normalizes each entry. Failures are
// logged and yield an empty result, never an error.
func (a *Adapter) Fetch(ctx context.Context) []jobs.Record {
	resp, err := a.client.Fetch(ctx, a.cfg.URL)
	if err != nil {
		a.logger.Warn("arbeitnow fetch failed", zap.String("url", a.cfg.URL), zap.Error(err))
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("arbeitnow unexpected status",
			zap.String("url", a.cfg.URL),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil
	}

	var payload apiPayload
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		a.logger.Warn("arbeitnow decode failed", zap.Error(err))
		return nil
	}

	records := make([]jobs.Record, 0, len(payload.Data))
	for _, job := range payload.Data {
		records = append(records, job.toRecord())
	}
	a.logger.Debug("arbeitnow fetch complete", zap.Int("records", len(records)))
	return records
}

type apiPayload struct {
	Data []apiJob `json:"data"`
}

type apiJob struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Company     string `json:"company"`
	CreatedAt   string `json:"created_at"`
}

func (j apiJob) toRecord() jobs.Record {
	title := j.Title
	if title == "" {
		title = "N/A"
	}
	company := j.CompanyName
	if company == "" {
		company = j.Company
	}
	if company == "" {
		company = jobs.CompanyUnknown
	}
	return jobs.Record{
		Title:      title,
		Company:    company,
		Category:   jobs.Categorize(title),
		DatePosted: datePosted(j.CreatedAt),
		Status:     jobs.StatusActive,
		Website:    Website,
	}
}

// datePosted keeps the date portion of an ISO timestamp, "N/A" when the
// source omits it.
func datePosted(createdAt string) string {
	if createdAt == "" {
		return "N/A"
	}
	if len(createdAt) > 10 {
		return createdAt[:10]
	}
	return createdAt
}
