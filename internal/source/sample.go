package source

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/acquireiq/enrich-cli/internal/model"
)

type sampleCompany struct {
	name     string
	domain   string
	industry string
}

var sampleCompanies = []sampleCompany{
	{"TechFlow Solutions", "techflow.com", "SaaS"},
	{"DataSync Inc", "datasync.io", "Data Analytics"},
	{"CloudBridge Systems", "cloudbridge.com", "Cloud Services"},
	{"SecureNet Corp", "securenet.com", "Cybersecurity"},
	{"FinTrack Software", "fintrack.io", "FinTech"},
	{"HealthHub Technologies", "healthhub.com", "HealthTech"},
	{"EduLearn Platform", "edulearn.com", "EdTech"},
	{"LogiChain Solutions", "logichain.com", "Logistics"},
	{"MarketPulse Analytics", "marketpulse.io", "Marketing"},
	{"GreenEnergy Systems", "greenenergy.com", "CleanTech"},
}

var (
	sampleFirstNames = []string{"John", "Sarah", "Michael", "Emily", "David", "Jennifer", "Robert", "Lisa", "James", "Mary"}
	sampleLastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	sampleTitles     = []string{"CEO", "Founder", "President", "Managing Director", "VP Operations", "Chief Executive"}
	sampleCities     = []string{"Austin", "Denver", "Seattle", "Portland", "Nashville", "Charlotte", "San Diego", "Boston"}
	sampleStates     = []string{"TX", "CO", "WA", "OR", "TN", "NC", "CA", "MA"}
)

// Sample generates up to n synthetic leads for demo and dry runs. At most one
// lead per sample company is produced.
func Sample(n int) []model.RawLead {
	if n > len(sampleCompanies) {
		n = len(sampleCompanies)
	}

	leads := make([]model.RawLead, 0, n)
	for i := 0; i < n; i++ {
		company := sampleCompanies[i]
		first := sampleFirstNames[rand.Intn(len(sampleFirstNames))]
		last := sampleLastNames[rand.Intn(len(sampleLastNames))]
		cityIdx := rand.Intn(len(sampleCities))

		leads = append(leads, model.RawLead{
			ID:             uuid.NewString(),
			FirstName:      first,
			LastName:       last,
			FullName:       first + " " + last,
			Title:          sampleTitles[rand.Intn(len(sampleTitles))],
			Email:          fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), company.domain),
			CompanyName:    company.name,
			CompanyDomain:  company.domain,
			CompanyWebsite: "https://" + company.domain,
			Industry:       company.industry,
			City:           sampleCities[cityIdx],
			State:          sampleStates[cityIdx],
			Country:        "USA",
			Source:         model.SourceSample,
		})
	}
	return leads
}
