// Package pipeline runs the one-shot normalize-filter-aggregate pass that
// turns raw storm records into a ranked impact report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
)

// ErrNoRecords is returned when the extractor yields an empty record set.
var ErrNoRecords = errors.New("input contains no records")

// Extractor materializes the raw record set from the input boundary.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.RawRecord, error)
}

// Pipeline orchestrates one extract-normalize-filter-aggregate run.
type Pipeline struct {
	extractor Extractor
	catalog   *domain.Catalog
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline over the given stages and observability.
func New(e Extractor, catalog *domain.Catalog, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor: e,
		catalog:   catalog,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes the full pass and produces the ranked report. Unmatched
// labels are filtered and counted, never fatal; an empty input set or an
// extractor failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	records, err := p.extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	p.metrics.RecordsRead.Add(float64(len(records)))
	p.logger.Info("records extracted", "count", len(records))

	retained := make([]labeledRecord, 0, len(records))
	dropped := 0
	for _, rec := range records {
		label, ok := p.catalog.Match(rec.EventLabel)
		if !ok {
			dropped++
			p.logger.Debug("dropping record with unmatched label", "label", rec.EventLabel)
			continue
		}
		retained = append(retained, labeledRecord{record: rec, label: label})
	}
	if dropped > 0 {
		p.metrics.RecordsDropped.Add(float64(dropped))
		p.logger.Warn("records dropped", "count", dropped, "of", len(records))
	}

	toll, damage, unrecognized := aggregate(p.catalog, retained)
	if unrecognized > 0 {
		p.metrics.UnrecognizedCodes.Add(float64(unrecognized))
		p.logger.Warn("unrecognized magnitude codes decoded with exponent 0", "count", unrecognized)
	}

	p.metrics.RunDuration.Observe(time.Since(start).Seconds())

	return &Report{
		RankedToll:        toll,
		RankedDamage:      damage,
		RecordsIn:         len(records),
		RecordsDropped:    dropped,
		UnrecognizedCodes: unrecognized,
		GeneratedAt:       clock.Now(),
	}, nil
}
