// Package jobs defines the core job record types and the text heuristics
// shared by every source adapter.
package jobs

import (
	"context"
	"strings"
	"time"
)

// StatusActive is the only lifecycle state a record ever carries; sources
// are not polled incrementally, so a harvested posting is always active.
const StatusActive = "Active"

// CompanyUnknown is the sentinel used when no company can be extracted.
const CompanyUnknown = "Unknown"

// Source identifiers accepted by the harvester as selection keys.
const (
	SourceArbeitnow         = "arbeitnow"
	SourceBerlinStartupJobs = "berlinstartupjobs"
	SourceJob4Good          = "job4good"
	SourceTurijobs          = "turijobs"
)

// Record is one normalized job posting. Records are immutable once an
// adapter produces them; the harvester only filters, never mutates.
type Record struct {
	Title      string `json:"job_title"`
	Company    string `json:"company"`
	Category   string `json:"category"`
	DatePosted string `json:"date_posted"`
	Status     string `json:"status"`
	Website    string `json:"website"`
}

// Key identifies duplicate postings across adapters. Two records with the
// same lower-cased trimmed title and company from the same website are the
// same posting.
type Key struct {
	Title   string
	Company string
	Website string
}

// DedupKey derives the record's dedup key.
func (r Record) DedupKey() Key {
	return Key{
		Title:   strings.ToLower(strings.TrimSpace(r.Title)),
		Company: strings.ToLower(strings.TrimSpace(r.Company)),
		Website: r.Website,
	}
}

// Adapter fetches one external job board and normalizes it into records.
// Fetch never returns an error: network, parse, and timeout failures are
// handled inside the adapter, which logs them and returns whatever partial
// results it has, possibly none.
type Adapter interface {
	ID() string
	Fetch(ctx context.Context) []Record
}

// Clock abstracts time.Now so adapters can stamp HTML-sourced records with
// a deterministic date in tests.
type Clock interface {
	Now() time.Time
}
