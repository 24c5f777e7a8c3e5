package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/acquireiq/enrich-cli/internal/model"
)

func exportLeads() []model.ScoredLead {
	return []model.ScoredLead{
		{
			EnrichedLead: model.EnrichedLead{
				RawLead: model.RawLead{
					ID:             "lead-1",
					FirstName:      "Jane",
					LastName:       "Doe",
					FullName:       "Jane Doe",
					Title:          "CEO",
					Email:          "jane@acme.com",
					Phone:          "+14155552671",
					CompanyName:    "Acme",
					CompanyDomain:  "acme.com",
					CompanyWebsite: "https://acme.com",
					Industry:       "SaaS",
					City:           "Austin",
					State:          "TX",
					Country:        "USA",
					Source:         model.SourceCSVUpload,
				},
				EmailStatus:        model.EmailVerified,
				EmailConfidence:    91,
				VerificationSource: model.VerifiedRemote,
			},
			QualityScore: 85,
			Band:         model.BandHigh,
		},
		{
			EnrichedLead: model.EnrichedLead{
				RawLead:     model.RawLead{ID: "lead-2", FirstName: "John", Source: model.SourceSample},
				EmailStatus: model.EmailInvalid,
			},
			QualityScore: 25,
			Band:         model.BandLow,
		},
	}
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"salesforce", FormatSalesforce, false},
		{"HubSpot", FormatHubSpot, false},
		{" pipedrive ", FormatPipedrive, false},
		{"generic", FormatGeneric, false},
		{"", FormatGeneric, false},
		{"dynamics", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestRating(t *testing.T) {
	assert.Equal(t, "Hot", rating(80))
	assert.Equal(t, "Warm", rating(79))
	assert.Equal(t, "Warm", rating(60))
	assert.Equal(t, "Cold", rating(59))
	assert.Equal(t, "Cold", rating(0))
}

func TestWriteCSVSalesforce(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, FormatSalesforce, exportLeads()))

	records := parseCSV(t, buf.Bytes())
	require.Len(t, records, 3)
	assert.Equal(t, "First Name", records[0][0])
	assert.Contains(t, records[0], "Lead Source")
	assert.Contains(t, records[0], "Rating")

	assert.Equal(t, "Jane", records[1][0])
	assert.Contains(t, records[1], "CSV Upload")
	assert.Contains(t, records[1], "Hot")
	assert.Contains(t, records[1], "New")
	assert.Contains(t, records[2], "Cold")
}

func TestWriteCSVHubSpot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, FormatHubSpot, exportLeads()))

	records := parseCSV(t, buf.Bytes())
	require.Len(t, records, 3)
	assert.Contains(t, records[0], "Company Domain Name")
	assert.Contains(t, records[0], "Lifecycle Stage")
	assert.Contains(t, records[1], "lead")
	assert.Contains(t, records[1], "verified")
	assert.Contains(t, records[1], "85")
}

func TestWriteCSVPipedrive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, FormatPipedrive, exportLeads()))

	records := parseCSV(t, buf.Bytes())
	require.Len(t, records, 3)
	assert.Equal(t, "Person", records[0][0])
	assert.Equal(t, "Jane Doe", records[1][0])
	// Person falls back to first/last when FullName is absent.
	assert.Equal(t, "John", records[2][0])
}

func TestWriteCSVGeneric(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, FormatGeneric, exportLeads()))

	records := parseCSV(t, buf.Bytes())
	require.Len(t, records, 3)
	assert.Contains(t, records[0], "Verification Source")
	assert.Contains(t, records[0], "Confidence Band")
	assert.Contains(t, records[1], "lead-1")
	assert.Contains(t, records[1], "remote")
	assert.Contains(t, records[1], "High")
	assert.Contains(t, records[2], "Sample Data")
}

func TestWriteCSVEmptyBatchStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, FormatGeneric, nil))

	records := parseCSV(t, buf.Bytes())
	require.Len(t, records, 1)
	assert.Equal(t, "ID", records[0][0])
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	require.NoError(t, WriteXLSX(path, FormatGeneric, exportLeads()))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	assert.Equal(t, "Leads", sheet.Name)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "lead-1", sheet.Rows[1].Cells[0].String())
	assert.Equal(t, "jane@acme.com", sheet.Rows[1].Cells[3].String())
}

func TestMarshalUnknownFormat(t *testing.T) {
	_, err := marshal(Format("dynamics"), exportLeads())
	assert.Error(t, err)
}
