package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acquireiq/enrich-cli/internal/model"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	s, err := New(DefaultWeights())
	require.NoError(t, err)
	return s
}

func fullLead() model.EnrichedLead {
	return model.EnrichedLead{
		RawLead: model.RawLead{
			FirstName:      "Jane",
			LastName:       "Doe",
			Title:          "CEO",
			Email:          "jane@acme.com",
			CompanyName:    "Acme",
			CompanyDomain:  "acme.com",
			CompanyWebsite: "https://acme.com",
			Industry:       "SaaS",
			LinkedInURL:    "https://linkedin.com/in/janedoe",
			City:           "Austin",
			State:          "TX",
			Source:         model.SourceCSVUpload,
		},
		EmailStatus:        model.EmailVerified,
		EmailConfidence:    100,
		VerificationSource: model.VerifiedRemote,
		PhoneValid:         true,
	}
}

func TestScoreFullLead(t *testing.T) {
	s := newTestScorer(t)

	scored := s.Score(fullLead())
	assert.Equal(t, 100, scored.QualityScore)
	assert.Equal(t, model.BandHigh, scored.Band)
	assert.InDelta(t, 40, scored.Breakdown.Email, 0.001)
	assert.InDelta(t, 20, scored.Breakdown.Contact, 0.001)
	assert.InDelta(t, 20, scored.Breakdown.Company, 0.001)
	assert.InDelta(t, 20, scored.Breakdown.Additional, 0.001)
}

func TestScoreInvalidEmailForcedToZero(t *testing.T) {
	s := newTestScorer(t)

	lead := fullLead()
	lead.EmailStatus = model.EmailInvalid
	lead.EmailConfidence = 95 // confidence never rescues an invalid status

	scored := s.Score(lead)
	assert.Zero(t, scored.Breakdown.Email)
	assert.Equal(t, 60, scored.QualityScore)
}

func TestScoreEmptyLead(t *testing.T) {
	s := newTestScorer(t)

	scored := s.Score(model.EnrichedLead{
		EmailStatus:        model.EmailInvalid,
		VerificationSource: model.VerifiedNone,
	})
	assert.Zero(t, scored.QualityScore)
	assert.Equal(t, model.BandLow, scored.Band)
}

func TestScoreEmailConfidenceScales(t *testing.T) {
	s := newTestScorer(t)

	lead := model.EnrichedLead{
		RawLead:         model.RawLead{Email: "x@y.com"},
		EmailStatus:     model.EmailUnverified,
		EmailConfidence: 90,
	}
	scored := s.Score(lead)
	// 90% of the 40-point email weight = 36.
	assert.InDelta(t, 36, scored.Breakdown.Email, 0.001)
	assert.Equal(t, 36, scored.QualityScore)
}

func TestScoreRiskyEmailNeverReachesFullEmailWeight(t *testing.T) {
	s := newTestScorer(t)

	lead := model.EnrichedLead{
		RawLead:         model.RawLead{Email: "test@mailinator.com"},
		EmailStatus:     model.EmailRisky,
		EmailConfidence: 70, // disposable check withholds its weight share
	}
	scored := s.Score(lead)
	assert.Less(t, scored.Breakdown.Email, 40.0)
}

func TestScoreContactFraction(t *testing.T) {
	s := newTestScorer(t)

	lead := model.EnrichedLead{
		RawLead:     model.RawLead{FirstName: "Jane", LastName: "Doe", Email: "j@d.com"},
		EmailStatus: model.EmailUnverified,
	}
	scored := s.Score(lead)
	// 2 of 3 contact fields present.
	assert.InDelta(t, 20.0*2/3, scored.Breakdown.Contact, 0.001)
}

func TestScoreMonotonicInConfidence(t *testing.T) {
	s := newTestScorer(t)

	prev := -1
	for conf := 0; conf <= 100; conf += 10 {
		lead := fullLead()
		lead.EmailConfidence = conf
		score := s.Score(lead).QualityScore
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := newTestScorer(t)

	lead := fullLead()
	first := s.Score(lead)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(lead))
	}
}

func TestBandThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  model.Band
	}{
		{0, model.BandLow},
		{39, model.BandLow},
		{40, model.BandMedium},
		{69, model.BandMedium},
		{70, model.BandHigh},
		{100, model.BandHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, model.BandFor(tt.score), "score %d", tt.score)
	}
}

func TestNewRejectsBadWeights(t *testing.T) {
	_, err := New(Weights{Email: 50, Contact: 20, Company: 20, Additional: 20})
	assert.Error(t, err)
}
