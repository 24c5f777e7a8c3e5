// Package export maps deduplicated scored leads into CRM import formats.
// Every exported row carries a quality score, band, and email (possibly
// empty), so downstream importers need no null handling.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/acquireiq/enrich-cli/internal/model"
)

// Format selects the target CRM column layout.
type Format string

const (
	FormatSalesforce Format = "salesforce"
	FormatHubSpot    Format = "hubspot"
	FormatPipedrive  Format = "pipedrive"
	FormatGeneric    Format = "generic"
)

// ParseFormat validates a format name from config or flags.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatSalesforce:
		return FormatSalesforce, nil
	case FormatHubSpot:
		return FormatHubSpot, nil
	case FormatPipedrive:
		return FormatPipedrive, nil
	case FormatGeneric, "":
		return FormatGeneric, nil
	default:
		return "", eris.Errorf("export: unknown format %q", s)
	}
}

// rating maps a quality score to the lead temperature labels CRMs expect.
func rating(score int) string {
	switch {
	case score >= 80:
		return "Hot"
	case score >= 60:
		return "Warm"
	default:
		return "Cold"
	}
}

// WriteCSV writes leads to w in the given format.
func WriteCSV(w io.Writer, format Format, leads []model.ScoredLead) error {
	data, err := marshal(format, leads)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return eris.Wrap(err, "export: write csv")
	}
	return nil
}

func marshal(format Format, leads []model.ScoredLead) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSalesforce:
		data, err = csvutil.Marshal(toSalesforce(leads))
	case FormatHubSpot:
		data, err = csvutil.Marshal(toHubSpot(leads))
	case FormatPipedrive:
		data, err = csvutil.Marshal(toPipedrive(leads))
	case FormatGeneric:
		data, err = csvutil.Marshal(toGeneric(leads))
	default:
		return nil, eris.Errorf("export: unknown format %q", format)
	}
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal rows")
	}
	return data, nil
}

// SalesforceRow matches the Salesforce lead import template.
type SalesforceRow struct {
	FirstName   string `csv:"First Name"`
	LastName    string `csv:"Last Name"`
	Email       string `csv:"Email"`
	Title       string `csv:"Title"`
	Company     string `csv:"Company"`
	Website     string `csv:"Website"`
	Industry    string `csv:"Industry"`
	Phone       string `csv:"Phone"`
	City        string `csv:"City"`
	State       string `csv:"State"`
	Country     string `csv:"Country"`
	LeadSource  string `csv:"Lead Source"`
	LeadStatus  string `csv:"Lead Status"`
	Rating      string `csv:"Rating"`
	Description string `csv:"Description"`
}

func toSalesforce(leads []model.ScoredLead) []SalesforceRow {
	rows := make([]SalesforceRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, SalesforceRow{
			FirstName:   l.FirstName,
			LastName:    l.LastName,
			Email:       l.Email,
			Title:       l.Title,
			Company:     l.CompanyName,
			Website:     l.CompanyWebsite,
			Industry:    l.Industry,
			Phone:       l.Phone,
			City:        l.City,
			State:       l.State,
			Country:     l.Country,
			LeadSource:  sourceLabel(l.Source),
			LeadStatus:  "New",
			Rating:      rating(l.QualityScore),
			Description: fmt.Sprintf("Quality Score: %d/100, Email Confidence: %d%%", l.QualityScore, l.EmailConfidence),
		})
	}
	return rows
}

// HubSpotRow matches the HubSpot contact import template.
type HubSpotRow struct {
	FirstName       string `csv:"First Name"`
	LastName        string `csv:"Last Name"`
	Email           string `csv:"Email"`
	JobTitle        string `csv:"Job Title"`
	CompanyName     string `csv:"Company Name"`
	CompanyDomain   string `csv:"Company Domain Name"`
	WebsiteURL      string `csv:"Website URL"`
	Industry        string `csv:"Industry"`
	Phone           string `csv:"Phone Number"`
	City            string `csv:"City"`
	State           string `csv:"State/Region"`
	Country         string `csv:"Country/Region"`
	LifecycleStage  string `csv:"Lifecycle Stage"`
	LeadSource      string `csv:"Lead Source"`
	QualityScore    int    `csv:"Quality Score"`
	EmailConfidence int    `csv:"Email Confidence"`
	EmailStatus     string `csv:"Email Status"`
}

func toHubSpot(leads []model.ScoredLead) []HubSpotRow {
	rows := make([]HubSpotRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, HubSpotRow{
			FirstName:       l.FirstName,
			LastName:        l.LastName,
			Email:           l.Email,
			JobTitle:        l.Title,
			CompanyName:     l.CompanyName,
			CompanyDomain:   l.CompanyDomain,
			WebsiteURL:      l.CompanyWebsite,
			Industry:        l.Industry,
			Phone:           l.Phone,
			City:            l.City,
			State:           l.State,
			Country:         l.Country,
			LifecycleStage:  "lead",
			LeadSource:      sourceLabel(l.Source),
			QualityScore:    l.QualityScore,
			EmailConfidence: l.EmailConfidence,
			EmailStatus:     string(l.EmailStatus),
		})
	}
	return rows
}

// PipedriveRow matches the Pipedrive person import template.
type PipedriveRow struct {
	Person          string `csv:"Person"`
	Email           string `csv:"Email"`
	Phone           string `csv:"Phone"`
	Organization    string `csv:"Organization"`
	JobTitle        string `csv:"Job Title"`
	Website         string `csv:"Website"`
	Label           string `csv:"Label"`
	QualityScore    int    `csv:"Quality Score"`
	EmailConfidence int    `csv:"Email Confidence"`
}

func toPipedrive(leads []model.ScoredLead) []PipedriveRow {
	rows := make([]PipedriveRow, 0, len(leads))
	for _, l := range leads {
		person := l.FullName
		if person == "" {
			person = strings.TrimSpace(l.FirstName + " " + l.LastName)
		}
		rows = append(rows, PipedriveRow{
			Person:          person,
			Email:           l.Email,
			Phone:           l.Phone,
			Organization:    l.CompanyName,
			JobTitle:        l.Title,
			Website:         l.CompanyWebsite,
			Label:           rating(l.QualityScore),
			QualityScore:    l.QualityScore,
			EmailConfidence: l.EmailConfidence,
		})
	}
	return rows
}

// GenericRow carries every computed field for CRM-agnostic imports.
type GenericRow struct {
	ID                 string `csv:"ID"`
	FirstName          string `csv:"First Name"`
	LastName           string `csv:"Last Name"`
	Email              string `csv:"Email"`
	EmailStatus        string `csv:"Email Status"`
	EmailConfidence    int    `csv:"Email Confidence"`
	VerificationSource string `csv:"Verification Source"`
	Title              string `csv:"Title"`
	Company            string `csv:"Company"`
	Domain             string `csv:"Domain"`
	Website            string `csv:"Website"`
	Industry           string `csv:"Industry"`
	Phone              string `csv:"Phone"`
	LinkedIn           string `csv:"LinkedIn"`
	City               string `csv:"City"`
	State              string `csv:"State"`
	Country            string `csv:"Country"`
	QualityScore       int    `csv:"Quality Score"`
	ConfidenceBand     string `csv:"Confidence Band"`
	DataSource         string `csv:"Data Source"`
}

func toGeneric(leads []model.ScoredLead) []GenericRow {
	rows := make([]GenericRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, GenericRow{
			ID:                 l.ID,
			FirstName:          l.FirstName,
			LastName:           l.LastName,
			Email:              l.Email,
			EmailStatus:        string(l.EmailStatus),
			EmailConfidence:    l.EmailConfidence,
			VerificationSource: string(l.VerificationSource),
			Title:              l.Title,
			Company:            l.CompanyName,
			Domain:             l.CompanyDomain,
			Website:            l.CompanyWebsite,
			Industry:           l.Industry,
			Phone:              l.Phone,
			LinkedIn:           l.LinkedInURL,
			City:               l.City,
			State:              l.State,
			Country:            l.Country,
			QualityScore:       l.QualityScore,
			ConfidenceBand:     string(l.Band),
			DataSource:         sourceLabel(l.Source),
		})
	}
	return rows
}

func sourceLabel(tag model.SourceTag) string {
	switch tag {
	case model.SourceDomainSearch:
		return "Domain Search"
	case model.SourceCSVUpload:
		return "CSV Upload"
	case model.SourceSample:
		return "Sample Data"
	default:
		return "AcquireIQ"
	}
}
