// Package pipeline sequences validation, enrichment, and scoring per lead,
// then deduplicates the scored batch.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/acquireiq/enrich-cli/internal/dedupe"
	"github.com/acquireiq/enrich-cli/internal/enricher"
	"github.com/acquireiq/enrich-cli/internal/model"
	"github.com/acquireiq/enrich-cli/internal/scorer"
)

// Config configures batch execution.
type Config struct {
	MaxConcurrent int // bounded worker pool size; default 5
}

// Pipeline orchestrates the enrichment stages over a batch of raw leads.
type Pipeline struct {
	enricher *enricher.Enricher
	scorer   *scorer.Scorer
	cfg      Config
}

// Result is the outcome of one batch run.
type Result struct {
	Leads  []model.ScoredLead
	Report model.Report
}

// New creates a Pipeline.
func New(e *enricher.Enricher, s *scorer.Scorer, cfg Config) *Pipeline {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 5
	}
	return &Pipeline{enricher: e, scorer: s, cfg: cfg}
}

// Run enriches and scores every lead, then deduplicates. Leads are
// independent up through scoring, so they run on a bounded worker pool;
// results land in positional slots so output is identical regardless of
// execution order. One lead's failure never aborts the batch. On
// cancellation the leads already scored form a valid partial batch, returned
// alongside the context error.
func (p *Pipeline) Run(ctx context.Context, leads []model.RawLead) (*Result, error) {
	start := time.Now()
	log := zap.L().With(zap.Int("leads", len(leads)))
	log.Info("pipeline: starting batch")

	scored := make([]model.ScoredLead, len(leads))
	done := make([]bool, len(leads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.MaxConcurrent)
	for i, lead := range leads {
		i, lead := i, lead
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil // abandoned; slot stays unfilled
			}
			scored[i] = p.process(gctx, lead)
			done[i] = true
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; isolation happens in process

	batch := make([]model.ScoredLead, 0, len(scored))
	for i := range scored {
		if done[i] {
			batch = append(batch, scored[i])
		}
	}

	// Dedup is the sole batch-wide step and runs only after the barrier.
	deduped := dedupe.Dedupe(batch)

	result := &Result{
		Leads:  deduped,
		Report: buildReport(len(leads), batch, deduped, time.Since(start)),
	}

	if err := ctx.Err(); err != nil {
		log.Warn("pipeline: batch aborted, returning partial results",
			zap.Int("completed", len(batch)),
		)
		return result, err
	}

	log.Info("pipeline: batch complete",
		zap.Int("deduped", len(deduped)),
		zap.Int("duplicates_removed", result.Report.DuplicatesRemoved),
		zap.Float64("avg_quality_score", result.Report.AvgQualityScore),
		zap.Duration("duration", result.Report.Duration),
	)
	return result, nil
}

// process enriches and scores one lead. A panic anywhere in the lead's
// processing is recorded as a degraded invalid outcome so the batch continues.
func (p *Pipeline) process(ctx context.Context, lead model.RawLead) (out model.ScoredLead) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("pipeline: lead processing panicked",
				zap.String("lead_id", lead.ID),
				zap.Any("panic", r),
			)
			out = p.scorer.Score(model.EnrichedLead{
				RawLead:            lead,
				EmailStatus:        model.EmailInvalid,
				EmailConfidence:    0,
				VerificationSource: model.VerifiedNone,
			})
		}
	}()

	return p.scorer.Score(p.enricher.Enrich(ctx, lead))
}

func buildReport(total int, batch, deduped []model.ScoredLead, duration time.Duration) model.Report {
	report := model.Report{
		TotalLeads:        total,
		Enriched:          len(batch),
		DuplicatesRemoved: len(batch) - len(deduped),
		Duration:          duration,
	}

	var scoreSum int
	for _, lead := range deduped {
		scoreSum += lead.QualityScore

		switch lead.EmailStatus {
		case model.EmailVerified:
			report.VerifiedEmails++
		case model.EmailInvalid:
			report.InvalidEmails++
		}

		switch lead.Band {
		case model.BandHigh:
			report.HighBand++
		case model.BandMedium:
			report.MediumBand++
		case model.BandLow:
			report.LowBand++
		}
	}
	if len(deduped) > 0 {
		report.AvgQualityScore = float64(scoreSum) / float64(len(deduped))
	}
	return report
}
