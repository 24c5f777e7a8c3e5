// Package scorer computes the 0-100 quality score and confidence band for
// enriched leads. Scoring is pure and fully deterministic.
package scorer

import (
	"math"

	"github.com/acquireiq/enrich-cli/internal/model"
)

// Scorer applies a fixed weight table to four lead-quality dimensions.
type Scorer struct {
	weights Weights
}

// New creates a Scorer. Invalid weight tables are rejected by Validate.
func New(weights Weights) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights}, nil
}

// Score computes the quality score for one lead. Monotonic non-decreasing in
// each of its four inputs.
func (s *Scorer) Score(lead model.EnrichedLead) model.ScoredLead {
	breakdown := model.ScoreBreakdown{
		Email:      s.emailScore(lead),
		Contact:    s.contactScore(lead),
		Company:    s.companyScore(lead),
		Additional: s.additionalScore(lead),
	}

	total := int(math.Round(breakdown.Email + breakdown.Contact + breakdown.Company + breakdown.Additional))
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return model.ScoredLead{
		EnrichedLead: lead,
		QualityScore: total,
		Band:         model.BandFor(total),
		Breakdown:    breakdown,
	}
}

// emailScore scales email confidence into the email weight's share.
// An invalid status forces 0 regardless of confidence.
func (s *Scorer) emailScore(lead model.EnrichedLead) float64 {
	if lead.EmailStatus == model.EmailInvalid {
		return 0
	}
	return float64(lead.EmailConfidence) / 100 * s.weights.Email
}

// contactScore is the fraction of first name, last name, and title present.
func (s *Scorer) contactScore(lead model.EnrichedLead) float64 {
	return fractionPresent(s.weights.Contact,
		lead.FirstName != "",
		lead.LastName != "",
		lead.Title != "",
	)
}

// companyScore is the fraction of company attributes present.
func (s *Scorer) companyScore(lead model.EnrichedLead) float64 {
	return fractionPresent(s.weights.Company,
		lead.CompanyName != "",
		lead.CompanyDomain != "",
		lead.CompanyWebsite != "",
		lead.Industry != "",
	)
}

// additionalScore covers the remaining optional enrichment fields.
func (s *Scorer) additionalScore(lead model.EnrichedLead) float64 {
	return fractionPresent(s.weights.Additional,
		lead.PhoneValid,
		lead.LinkedInURL != "",
		lead.City != "" && lead.State != "",
		lead.Source != model.SourceUnknown,
	)
}

func fractionPresent(weight float64, signals ...bool) float64 {
	if len(signals) == 0 {
		return 0
	}
	present := 0
	for _, ok := range signals {
		if ok {
			present++
		}
	}
	return float64(present) / float64(len(signals)) * weight
}
