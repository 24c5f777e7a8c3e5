// Package model defines the immutable record types passed between pipeline stages.
package model

import (
	"strings"
	"time"
)

// SourceTag identifies which acquisition path produced a lead.
type SourceTag string

const (
	SourceDomainSearch SourceTag = "domain_search" // remote company-contact API
	SourceCSVUpload    SourceTag = "csv_upload"
	SourceSample       SourceTag = "sample"
	SourceUnknown      SourceTag = ""
)

// Priority returns the dedup tie-break rank of a source. Lower wins:
// remote-sourced beats CSV uploads beats sample data.
func (s SourceTag) Priority() int {
	switch s {
	case SourceDomainSearch:
		return 0
	case SourceCSVUpload:
		return 1
	case SourceSample:
		return 2
	default:
		return 3
	}
}

// RawLead is a contact record as produced by an acquisition source.
// All fields except names and source are optional.
type RawLead struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name,omitempty"`
	Title          string    `json:"title,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	CompanyName    string    `json:"company_name,omitempty"`
	CompanyDomain  string    `json:"company_domain,omitempty"`
	CompanyWebsite string    `json:"company_website,omitempty"`
	Industry       string    `json:"industry,omitempty"`
	LinkedInURL    string    `json:"linkedin_url,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Country        string    `json:"country,omitempty"`
	Source         SourceTag `json:"source"`
}

// NormalizedEmail returns the dedup identity key: trimmed and lowercased.
// An empty result means the lead has no email identity and never collides.
func (l RawLead) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(l.Email))
}

// LocalStatus is the verdict of offline validation.
type LocalStatus string

const (
	LocalValid   LocalStatus = "valid"
	LocalRisky   LocalStatus = "risky"
	LocalInvalid LocalStatus = "invalid"
	LocalUnknown LocalStatus = "unknown"
)

// Checks records the individual offline validation signals.
// SMTPChecked distinguishes a skipped/failed probe from a negative result.
type Checks struct {
	SyntaxValid   bool `json:"syntax_valid"`
	MXRecords     bool `json:"mx_records"`
	Disposable    bool `json:"disposable"`
	Gibberish     bool `json:"gibberish"`
	Webmail       bool `json:"webmail"`
	SMTPChecked   bool `json:"smtp_checked"`
	SMTPReachable bool `json:"smtp_reachable"`
}

// ValidationOutcome is the result of local validation for one email.
// Re-validation produces a new outcome; outcomes are never mutated.
type ValidationOutcome struct {
	Email           string      `json:"email"`
	Checks          Checks      `json:"checks"`
	LocalConfidence float64     `json:"local_confidence"` // [0,1]
	Status          LocalStatus `json:"status"`
}

// EmailStatus is the merged verification verdict for an enriched lead.
type EmailStatus string

const (
	EmailVerified   EmailStatus = "verified"
	EmailRisky      EmailStatus = "risky"
	EmailInvalid    EmailStatus = "invalid"
	EmailUnverified EmailStatus = "unverified"
)

// VerificationSource records which capability produced the final verdict.
type VerificationSource string

const (
	VerifiedRemote VerificationSource = "remote"
	VerifiedLocal  VerificationSource = "local"
	VerifiedNone   VerificationSource = "none"
)

// EnrichedLead is a RawLead with a merged verification outcome attached.
type EnrichedLead struct {
	RawLead
	EmailStatus        EmailStatus        `json:"email_status"`
	EmailConfidence    int                `json:"email_confidence"` // [0,100]
	VerificationSource VerificationSource `json:"verification_source"`
	Checks             Checks             `json:"checks"`
	PhoneValid         bool               `json:"phone_valid"`
	EmailGuessed       bool               `json:"email_guessed,omitempty"`
}

// Band is the discrete confidence classification of a quality score.
type Band string

const (
	BandHigh   Band = "High"
	BandMedium Band = "Medium"
	BandLow    Band = "Low"
)

// BandFor maps a quality score to its band. Thresholds are fixed:
// High >= 70, Medium 40-69, Low < 40.
func BandFor(score int) Band {
	switch {
	case score >= 70:
		return BandHigh
	case score >= 40:
		return BandMedium
	default:
		return BandLow
	}
}

// ScoreBreakdown holds the four weighted sub-score contributions.
type ScoreBreakdown struct {
	Email      float64 `json:"email"`
	Contact    float64 `json:"contact"`
	Company    float64 `json:"company"`
	Additional float64 `json:"additional"`
}

// ScoredLead is an EnrichedLead with its final quality score and band.
type ScoredLead struct {
	EnrichedLead
	QualityScore int            `json:"quality_score"` // [0,100]
	Band         Band           `json:"confidence_band"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
}

// Report summarizes a pipeline run over one batch.
type Report struct {
	TotalLeads        int           `json:"total_leads"`
	Enriched          int           `json:"enriched"`
	VerifiedEmails    int           `json:"verified_emails"`
	InvalidEmails     int           `json:"invalid_emails"`
	HighBand          int           `json:"high_band"`
	MediumBand        int           `json:"medium_band"`
	LowBand           int           `json:"low_band"`
	DuplicatesRemoved int           `json:"duplicates_removed"`
	AvgQualityScore   float64       `json:"avg_quality_score"`
	Duration          time.Duration `json:"duration"`
}
