package source

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/acquireiq/enrich-cli/internal/model"
)

// FromCSV parses an uploaded lead table. The expected column set is
// first_name, last_name, email, company_name, title (plus the optional
// aliases in columnAliases); absent columns yield empty optional fields.
// Only an unreadable container fails the whole upload.
func FromCSV(r io.Reader) ([]model.RawLead, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "source: read csv header")
	}
	idx := headerIndex(header)

	var leads []model.RawLead
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "source: read csv row")
		}
		leads = append(leads, leadFromRow(row, idx, model.SourceCSVUpload))
	}

	zap.L().Info("source: parsed csv upload", zap.Int("leads", len(leads)))
	return leads, nil
}
