package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acquireiq/enrich-cli/internal/model"
)

func scoredLead(id, email string, score int, source model.SourceTag) model.ScoredLead {
	return model.ScoredLead{
		EnrichedLead: model.EnrichedLead{
			RawLead: model.RawLead{ID: id, Email: email, Source: source},
		},
		QualityScore: score,
	}
}

func TestDedupeCaseAndWhitespaceCollide(t *testing.T) {
	batch := []model.ScoredLead{
		scoredLead("a", "Jane@Acme.com", 80, model.SourceCSVUpload),
		scoredLead("b", "  jane@acme.com ", 60, model.SourceCSVUpload),
	}

	out := Dedupe(batch)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestDedupeKeepsHighestScore(t *testing.T) {
	batch := []model.ScoredLead{
		scoredLead("low", "jane@acme.com", 40, model.SourceCSVUpload),
		scoredLead("high", "jane@acme.com", 90, model.SourceCSVUpload),
		scoredLead("mid", "jane@acme.com", 70, model.SourceCSVUpload),
	}

	out := Dedupe(batch)
	require.Len(t, out, 1)
	assert.Equal(t, "high", out[0].ID)
}

func TestDedupeSourcePriorityBreaksScoreTie(t *testing.T) {
	batch := []model.ScoredLead{
		scoredLead("csv", "jane@acme.com", 70, model.SourceCSVUpload),
		scoredLead("remote", "jane@acme.com", 70, model.SourceDomainSearch),
		scoredLead("sample", "jane@acme.com", 70, model.SourceSample),
	}

	out := Dedupe(batch)
	require.Len(t, out, 1)
	assert.Equal(t, "remote", out[0].ID)
}

func TestDedupeFullTieKeepsFirstOccurrence(t *testing.T) {
	batch := []model.ScoredLead{
		scoredLead("first", "jane@acme.com", 70, model.SourceCSVUpload),
		scoredLead("second", "jane@acme.com", 70, model.SourceCSVUpload),
	}

	out := Dedupe(batch)
	require.Len(t, out, 1)
	assert.Equal(t, "first", out[0].ID)
}

func TestDedupeEmptyEmailsNeverCollide(t *testing.T) {
	batch := []model.ScoredLead{
		scoredLead("a", "", 10, model.SourceSample),
		scoredLead("b", "", 20, model.SourceSample),
		scoredLead("c", "   ", 30, model.SourceSample),
	}

	out := Dedupe(batch)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestDedupePreservesFirstAppearanceOrder(t *testing.T) {
	batch := []model.ScoredLead{
		scoredLead("a", "a@acme.com", 50, model.SourceCSVUpload),
		scoredLead("b1", "b@acme.com", 40, model.SourceCSVUpload),
		scoredLead("c", "c@acme.com", 60, model.SourceCSVUpload),
		scoredLead("b2", "b@acme.com", 90, model.SourceCSVUpload),
	}

	out := Dedupe(batch)
	require.Len(t, out, 3)
	// The survivor of the b identity occupies the slot of its first appearance.
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b2", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestDedupeIdempotent(t *testing.T) {
	batch := []model.ScoredLead{
		scoredLead("a", "jane@acme.com", 80, model.SourceCSVUpload),
		scoredLead("b", "jane@acme.com", 60, model.SourceSample),
		scoredLead("c", "john@acme.com", 50, model.SourceCSVUpload),
	}

	once := Dedupe(batch)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
}

func TestDedupeEmptyBatch(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
	assert.Empty(t, Dedupe([]model.ScoredLead{}))
}
