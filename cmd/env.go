package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/acquireiq/enrich-cli/internal/config"
	"github.com/acquireiq/enrich-cli/internal/enricher"
	"github.com/acquireiq/enrich-cli/internal/pipeline"
	"github.com/acquireiq/enrich-cli/internal/scorer"
	"github.com/acquireiq/enrich-cli/internal/validator"
	"github.com/acquireiq/enrich-cli/pkg/hunter"
)

// env wires the pipeline and its collaborators from config.
type env struct {
	Hunter    hunter.Client // nil when no API key is configured
	Validator *validator.Validator
	Pipeline  *pipeline.Pipeline
}

func initPipeline(cfg *config.Config) (*env, error) {
	var opts []validator.Option
	if cfg.Validator.DisposableDomains != "" {
		domains, err := validator.LoadDisposableDomains(cfg.Validator.DisposableDomains)
		if err != nil {
			return nil, err
		}
		opts = append(opts, validator.WithDisposableDomains(domains))
	}

	local := validator.New(validator.Config{
		DNSTimeout:  time.Duration(cfg.Validator.DNSTimeoutSecs) * time.Second,
		CacheTTL:    time.Duration(cfg.Validator.CacheTTLMins) * time.Minute,
		SMTPProbe:   cfg.Validator.SMTPProbe,
		SMTPTimeout: time.Duration(cfg.Validator.SMTPTimeoutSecs) * time.Second,
	}, opts...)

	var client hunter.Client
	if cfg.Hunter.APIKey != "" {
		client = hunter.NewClient(cfg.Hunter.APIKey,
			hunter.WithBaseURL(cfg.Hunter.BaseURL),
			hunter.WithRateLimit(cfg.Hunter.MaxRPS),
		)
	} else {
		zap.L().Warn("no verification API key configured, running in local-only mode")
	}

	weights, err := scorer.LoadWeights(cfg.Scorer.WeightsFile)
	if err != nil {
		return nil, err
	}
	qualityScorer, err := scorer.New(weights)
	if err != nil {
		return nil, err
	}

	merger := enricher.New(client, local, enricher.Config{
		Timeout:     time.Duration(cfg.Hunter.TimeoutSecs) * time.Second,
		MaxAttempts: cfg.Hunter.MaxAttempts,
		GuessEmails: cfg.Hunter.GuessEmails,
	})

	return &env{
		Hunter:    client,
		Validator: local,
		Pipeline:  pipeline.New(merger, qualityScorer, pipeline.Config{MaxConcurrent: cfg.Batch.MaxConcurrent}),
	}, nil
}
