// Package harvest runs the selected source adapters concurrently and
// merges their output into one deduplicated collection.
package harvest

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/recruitscout/recruitscout/internal/jobs"
	"github.com/recruitscout/recruitscout/internal/metrics"
)

// Harvester fans out over registered adapters and reassembles their
// results. A harvest never fails: the worst case is an empty collection.
type Harvester struct {
	adapters []jobs.Adapter
	byID     map[string]jobs.Adapter
	order    []string
	logger   *zap.Logger
}

// New constructs a Harvester over the given adapters. The adapter order
// given here is the result order for a default harvest.
func New(adapters []jobs.Adapter, logger *zap.Logger) *Harvester {
	if logger == nil {
		logger = zap.NewNop()
	}
	byID := make(map[string]jobs.Adapter, len(adapters))
	order := make([]string, 0, len(adapters))
	for _, a := range adapters {
		byID[a.ID()] = a
		order = append(order, a.ID())
	}
	return &Harvester{
		adapters: adapters,
		byID:     byID,
		order:    order,
		logger:   logger,
	}
}

// SourceIDs returns the registered source identifiers in harvest order.
func (h *Harvester) SourceIDs() []string {
	return append([]string(nil), h.order...)
}

// Harvest fetches the selected sources concurrently, reassembles results
// in source-iteration order, and deduplicates them first-seen-wins. An
// empty or nil selection means all sources; unknown ids are ignored.
// Harvest always returns a usable (possibly empty) collection.
func (h *Harvester) Harvest(ctx context.Context, sourceIDs []string) []jobs.Record {
	start := time.Now()
	defer func() { metrics.ObserveHarvest(time.Since(start)) }()

	selected := h.selectAdapters(sourceIDs)

	// Results are indexed by selection position, not completion order, so
	// output stays deterministic under concurrent adapters.
	results := make([][]jobs.Record, len(selected))
	var g errgroup.Group
	for i, adapter := range selected {
		i, adapter := i, adapter
		g.Go(func() error {
			results[i] = h.fetchOne(ctx, adapter)
			return nil
		})
	}
	_ = g.Wait()

	merged := make([]jobs.Record, 0)
	seen := make(map[jobs.Key]struct{})
	for _, records := range results {
		for _, rec := range records {
			key := rec.DedupKey()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, rec)
		}
	}

	h.logger.Info("harvest complete",
		zap.Int("sources", len(selected)),
		zap.Int("records", len(merged)),
	)
	return merged
}

func (h *Harvester) selectAdapters(sourceIDs []string) []jobs.Adapter {
	if len(sourceIDs) == 0 {
		return append([]jobs.Adapter(nil), h.adapters...)
	}
	selected := make([]jobs.Adapter, 0, len(sourceIDs))
	for _, id := range sourceIDs {
		adapter, ok := h.byID[id]
		if !ok {
			h.logger.Debug("ignoring unknown source id", zap.String("source", id))
			continue
		}
		selected = append(selected, adapter)
	}
	return selected
}

// fetchOne invokes one adapter and contains any failure that leaks past
// the adapter's own never-raise contract. A failed source contributes
// zero records; the harvest continues.
func (h *Harvester) fetchOne(ctx context.Context, adapter jobs.Adapter) (records []jobs.Record) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("adapter panicked",
				zap.String("source", adapter.ID()),
				zap.Any("panic", rec),
			)
			metrics.ObserveSourceFailure(adapter.ID())
			records = nil
		}
	}()

	records = adapter.Fetch(ctx)
	metrics.ObserveSource(adapter.ID(), len(records))
	return records
}
