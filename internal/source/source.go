// Package source provides the lead acquisition paths: a sample generator,
// CSV/XLSX uploads, and the remote company-contact search.
package source

import (
	"strings"

	"github.com/google/uuid"

	"github.com/acquireiq/enrich-cli/internal/model"
)

// columnAliases maps accepted upload header names to canonical columns.
// Missing columns map to absent optional fields, never to a hard failure.
var columnAliases = map[string]string{
	"first_name":      "first_name",
	"firstname":       "first_name",
	"last_name":       "last_name",
	"lastname":        "last_name",
	"full_name":       "full_name",
	"email":           "email",
	"title":           "title",
	"position":        "position",
	"company_name":    "company_name",
	"company":         "company_name",
	"company_domain":  "company_domain",
	"domain":          "company_domain",
	"company_website": "company_website",
	"website":         "company_website",
	"industry":        "industry",
	"phone":           "phone",
	"linkedin_url":    "linkedin_url",
	"linkedin":        "linkedin_url",
	"city":            "city",
	"state":           "state",
	"country":         "country",
}

// headerIndex maps canonical column names to their position in the header
// row. Unknown columns are ignored.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := columnAliases[name]; ok {
			if _, taken := idx[canonical]; !taken {
				idx[canonical] = i
			}
		}
	}
	return idx
}

// leadFromRow builds a RawLead from one upload row using the header index.
func leadFromRow(row []string, idx map[string]int, tag model.SourceTag) model.RawLead {
	cell := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	lead := model.RawLead{
		ID:             uuid.NewString(),
		FirstName:      cell("first_name"),
		LastName:       cell("last_name"),
		FullName:       cell("full_name"),
		Title:          cell("title"),
		Email:          cell("email"),
		Phone:          cell("phone"),
		CompanyName:    cell("company_name"),
		CompanyDomain:  cell("company_domain"),
		CompanyWebsite: cell("company_website"),
		Industry:       cell("industry"),
		LinkedInURL:    cell("linkedin_url"),
		City:           cell("city"),
		State:          cell("state"),
		Country:        cell("country"),
		Source:         tag,
	}
	if lead.Title == "" {
		lead.Title = cell("position")
	}
	if lead.FullName == "" {
		lead.FullName = strings.TrimSpace(lead.FirstName + " " + lead.LastName)
	}
	return lead
}
