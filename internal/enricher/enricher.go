// Package enricher merges remote email verification with local validation
// into one authoritative per-lead outcome.
package enricher

import (
	"context"
	"math"
	"time"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"github.com/acquireiq/enrich-cli/internal/model"
	"github.com/acquireiq/enrich-cli/internal/resilience"
	"github.com/acquireiq/enrich-cli/internal/validator"
	"github.com/acquireiq/enrich-cli/pkg/hunter"
)

// remoteWeight biases the confidence blend toward the remote score when both
// a remote and a local signal exist.
const remoteWeight = 0.7

// Config configures the merger.
type Config struct {
	Timeout       time.Duration // per remote verification call; default 10s
	MaxAttempts   int           // bounded attempts per call; default 2
	DefaultRegion string        // phone parsing region; default "US"
	GuessEmails   bool          // find missing emails via the remote capability
}

// Enricher produces one EnrichedLead per RawLead. A nil verification client
// puts the whole run in local-only mode.
type Enricher struct {
	client hunter.Client
	local  *validator.Validator
	cfg    Config
	retry  resilience.RetryConfig
}

// New creates an Enricher. client may be nil when no credential is configured.
func New(client hunter.Client, local *validator.Validator, cfg Config) *Enricher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 2
	}
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = "US"
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.MaxAttempts
	retry.OnRetry = resilience.RetryLogger("hunter", "verify_email")

	return &Enricher{
		client: client,
		local:  local,
		cfg:    cfg,
		retry:  retry,
	}
}

// Enrich validates and verifies one lead. It never returns an error: every
// failure path degrades to a well-formed outcome.
func (e *Enricher) Enrich(ctx context.Context, lead model.RawLead) model.EnrichedLead {
	enriched := model.EnrichedLead{RawLead: lead}

	if lead.Phone != "" {
		enriched.Phone, enriched.PhoneValid = e.normalizePhone(lead.Phone)
	}

	if lead.Email == "" {
		if found, ok := e.findEmail(ctx, lead); ok {
			enriched.Email = found
			enriched.EmailGuessed = true
		}
	}

	if enriched.Email == "" {
		enriched.EmailStatus = model.EmailInvalid
		enriched.EmailConfidence = 0
		enriched.VerificationSource = model.VerifiedNone
		return enriched
	}

	// Local validation always runs first; it is the guaranteed fallback.
	outcome := e.local.Validate(ctx, enriched.Email)
	enriched.Checks = outcome.Checks

	if e.client == nil {
		return mergeLocal(enriched, outcome)
	}

	remote, err := resilience.DoVal(ctx, e.retry, func(ctx context.Context) (*hunter.Verification, error) {
		callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
		return e.client.VerifyEmail(callCtx, enriched.Email)
	})
	if err != nil {
		zap.L().Warn("enricher: remote verification unavailable, using local fallback",
			zap.String("email", enriched.Email),
			zap.Error(err),
		)
		return mergeLocal(enriched, outcome)
	}

	return mergeRemote(enriched, outcome, remote)
}

// mergeRemote applies a definitive remote result. The remote verdict
// dominates; confidence blends both signals to smooth disagreement.
func mergeRemote(enriched model.EnrichedLead, outcome model.ValidationOutcome, remote *hunter.Verification) model.EnrichedLead {
	switch remote.Deliverability() {
	case hunter.Deliverable:
		enriched.EmailStatus = model.EmailVerified
	case hunter.Undeliverable:
		enriched.EmailStatus = model.EmailInvalid
	default:
		enriched.EmailStatus = model.EmailRisky
	}

	blended := remoteWeight*float64(remote.Score) + (1-remoteWeight)*outcome.LocalConfidence*100
	enriched.EmailConfidence = clampScore(int(math.Round(blended)))
	enriched.VerificationSource = model.VerifiedRemote

	if remote.Disposable {
		enriched.Checks.Disposable = true
	}
	return enriched
}

// mergeLocal derives the final outcome from local validation alone. A locally
// valid address stays unverified: no remote confirmation exists.
func mergeLocal(enriched model.EnrichedLead, outcome model.ValidationOutcome) model.EnrichedLead {
	switch outcome.Status {
	case model.LocalInvalid:
		enriched.EmailStatus = model.EmailInvalid
	case model.LocalRisky:
		enriched.EmailStatus = model.EmailRisky
	default: // valid, unknown
		enriched.EmailStatus = model.EmailUnverified
	}

	enriched.EmailConfidence = clampScore(int(math.Round(outcome.LocalConfidence * 100)))
	enriched.VerificationSource = model.VerifiedLocal
	return enriched
}

// findEmail asks the remote capability for an address when the lead has a
// name and a company domain but no email. Failures leave the lead as-is.
func (e *Enricher) findEmail(ctx context.Context, lead model.RawLead) (string, bool) {
	if !e.cfg.GuessEmails || e.client == nil {
		return "", false
	}
	if lead.FirstName == "" || lead.LastName == "" || lead.CompanyDomain == "" {
		return "", false
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	result, err := e.client.FindEmail(callCtx, lead.FirstName, lead.LastName, lead.CompanyDomain)
	if err != nil {
		zap.L().Debug("enricher: email finder unavailable",
			zap.String("domain", lead.CompanyDomain),
			zap.Error(err),
		)
		return "", false
	}
	if result.Email == "" || result.Score <= 50 {
		return "", false
	}
	return result.Email, true
}

// normalizePhone parses and E.164-formats a phone number.
func (e *Enricher) normalizePhone(raw string) (string, bool) {
	num, err := phonenumbers.Parse(raw, e.cfg.DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw, false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
