package source

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/acquireiq/enrich-cli/internal/model"
	"github.com/acquireiq/enrich-cli/pkg/hunter"
)

// FromDomains collects leads from the remote company-contact search, one
// query per domain. A failing domain is logged and skipped; the remaining
// domains still contribute.
func FromDomains(ctx context.Context, client hunter.Client, domains []string, perDomain int) ([]model.RawLead, error) {
	if client == nil {
		return nil, eris.New("source: domain search requires a configured verification API key")
	}

	var leads []model.RawLead
	for _, domain := range domains {
		domain = strings.TrimSpace(domain)
		if domain == "" {
			continue
		}

		result, err := client.DomainSearch(ctx, domain, perDomain)
		if err != nil {
			zap.L().Warn("source: domain search failed, skipping domain",
				zap.String("domain", domain),
				zap.Error(err),
			)
			continue
		}

		for _, email := range result.Emails {
			leads = append(leads, model.RawLead{
				ID:             uuid.NewString(),
				FirstName:      email.FirstName,
				LastName:       email.LastName,
				FullName:       strings.TrimSpace(email.FirstName + " " + email.LastName),
				Title:          email.Position,
				Email:          email.Value,
				CompanyName:    result.Organization,
				CompanyDomain:  domain,
				CompanyWebsite: "https://" + domain,
				Industry:       result.Industry,
				Source:         model.SourceDomainSearch,
			})
		}

		zap.L().Info("source: domain search complete",
			zap.String("domain", domain),
			zap.Int("leads", len(result.Emails)),
		)
	}

	return leads, nil
}
