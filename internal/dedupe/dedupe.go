// Package dedupe collapses scored leads sharing a normalized email identity,
// keeping the highest-quality survivor per identity.
package dedupe

import (
	"github.com/acquireiq/enrich-cli/internal/model"
)

// Dedupe returns a new batch with one survivor per non-empty normalized
// email. Leads without an email never collide and pass through unchanged.
// Surviving records keep the relative order of their first appearance, so
// the operation is deterministic and idempotent.
func Dedupe(batch []model.ScoredLead) []model.ScoredLead {
	out := make([]model.ScoredLead, 0, len(batch))
	seen := make(map[string]int) // normalized email -> index in out

	for _, lead := range batch {
		key := lead.NormalizedEmail()
		if key == "" {
			out = append(out, lead)
			continue
		}

		pos, ok := seen[key]
		if !ok {
			seen[key] = len(out)
			out = append(out, lead)
			continue
		}

		if beats(lead, out[pos]) {
			out[pos] = lead
		}
	}

	return out
}

// beats reports whether candidate should replace the current survivor:
// higher quality score first, then source priority (remote-sourced beats
// CSV beats sample), and on a full tie the earlier occurrence stands.
func beats(candidate, current model.ScoredLead) bool {
	if candidate.QualityScore != current.QualityScore {
		return candidate.QualityScore > current.QualityScore
	}
	return candidate.Source.Priority() < current.Source.Priority()
}
