package source

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acquireiq/enrich-cli/internal/model"
	"github.com/acquireiq/enrich-cli/pkg/hunter"
)

func TestFromCSV(t *testing.T) {
	csvData := `first_name,last_name,email,company_name,title
Jane,Doe,jane@acme.com,Acme,CEO
John,Roe,john@beta.io,Beta,CTO
`
	leads, err := FromCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, leads, 2)

	assert.Equal(t, "Jane", leads[0].FirstName)
	assert.Equal(t, "Doe", leads[0].LastName)
	assert.Equal(t, "Jane Doe", leads[0].FullName)
	assert.Equal(t, "jane@acme.com", leads[0].Email)
	assert.Equal(t, "Acme", leads[0].CompanyName)
	assert.Equal(t, "CEO", leads[0].Title)
	assert.Equal(t, model.SourceCSVUpload, leads[0].Source)
	assert.NotEmpty(t, leads[0].ID)
	assert.NotEqual(t, leads[0].ID, leads[1].ID)
}

func TestFromCSVHeaderAliases(t *testing.T) {
	csvData := `FirstName,LastName,Email,Company,Position,Website,LinkedIn
Jane,Doe,jane@acme.com,Acme,CEO,https://acme.com,https://linkedin.com/in/jane
`
	leads, err := FromCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, leads, 1)

	assert.Equal(t, "Acme", leads[0].CompanyName)
	assert.Equal(t, "CEO", leads[0].Title)
	assert.Equal(t, "https://acme.com", leads[0].CompanyWebsite)
	assert.Equal(t, "https://linkedin.com/in/jane", leads[0].LinkedInURL)
}

func TestFromCSVMissingColumnsYieldEmptyFields(t *testing.T) {
	csvData := `email
jane@acme.com
`
	leads, err := FromCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "jane@acme.com", leads[0].Email)
	assert.Empty(t, leads[0].FirstName)
	assert.Empty(t, leads[0].CompanyName)
}

func TestFromCSVRaggedRows(t *testing.T) {
	csvData := `first_name,last_name,email
Jane,Doe,jane@acme.com
John
`
	leads, err := FromCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "John", leads[1].FirstName)
	assert.Empty(t, leads[1].Email)
}

func TestFromCSVEmptyInput(t *testing.T) {
	leads, err := FromCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestFromCSVTitleFallsBackToPosition(t *testing.T) {
	csvData := `first_name,email,position
Jane,jane@acme.com,VP Sales
`
	leads, err := FromCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "VP Sales", leads[0].Title)
}

func TestSample(t *testing.T) {
	leads := Sample(5)
	require.Len(t, leads, 5)

	for _, lead := range leads {
		assert.NotEmpty(t, lead.ID)
		assert.NotEmpty(t, lead.FirstName)
		assert.NotEmpty(t, lead.Email)
		assert.Contains(t, lead.Email, "@")
		assert.NotEmpty(t, lead.CompanyDomain)
		assert.Equal(t, model.SourceSample, lead.Source)
	}
	// One lead per sample company, so no two leads share a domain.
	assert.NotEqual(t, leads[0].CompanyDomain, leads[1].CompanyDomain)
}

func TestSampleCapped(t *testing.T) {
	leads := Sample(1000)
	assert.Len(t, leads, len(sampleCompanies))
}

// fakeSearcher answers domain searches per domain and fails designated ones.
type fakeSearcher struct {
	results map[string]*hunter.DomainResult
	fail    map[string]error
}

func (f *fakeSearcher) VerifyEmail(ctx context.Context, email string) (*hunter.Verification, error) {
	return nil, nil
}

func (f *fakeSearcher) DomainSearch(ctx context.Context, domain string, limit int) (*hunter.DomainResult, error) {
	if err, ok := f.fail[domain]; ok {
		return nil, err
	}
	return f.results[domain], nil
}

func (f *fakeSearcher) FindEmail(ctx context.Context, firstName, lastName, domain string) (*hunter.FinderResult, error) {
	return nil, nil
}

func TestFromDomains(t *testing.T) {
	client := &fakeSearcher{results: map[string]*hunter.DomainResult{
		"acme.com": {
			Domain:       "acme.com",
			Organization: "Acme Inc",
			Industry:     "SaaS",
			Emails: []hunter.DomainEmail{
				{Value: "jane@acme.com", FirstName: "Jane", LastName: "Doe", Position: "CEO", Confidence: 92},
			},
		},
	}}

	leads, err := FromDomains(context.Background(), client, []string{"acme.com"}, 10)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "jane@acme.com", leads[0].Email)
	assert.Equal(t, "Jane Doe", leads[0].FullName)
	assert.Equal(t, "CEO", leads[0].Title)
	assert.Equal(t, "Acme Inc", leads[0].CompanyName)
	assert.Equal(t, model.SourceDomainSearch, leads[0].Source)
}

func TestFromDomainsSkipsFailingDomain(t *testing.T) {
	client := &fakeSearcher{
		results: map[string]*hunter.DomainResult{
			"good.com": {Domain: "good.com", Emails: []hunter.DomainEmail{{Value: "a@good.com"}}},
		},
		fail: map[string]error{"bad.com": assert.AnError},
	}

	leads, err := FromDomains(context.Background(), client, []string{"bad.com", "good.com"}, 10)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "a@good.com", leads[0].Email)
}

func TestFromDomainsRequiresClient(t *testing.T) {
	_, err := FromDomains(context.Background(), nil, []string{"acme.com"}, 10)
	assert.Error(t, err)
}
