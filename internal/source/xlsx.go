package source

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/acquireiq/enrich-cli/internal/model"
)

// FromXLSX parses an uploaded XLSX workbook. The first sheet's first row is
// the header; column handling matches FromCSV.
func FromXLSX(path string) ([]model.RawLead, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("source: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, nil
	}

	idx := headerIndex(rowToStrings(sheet.Rows[0]))

	var leads []model.RawLead
	for _, row := range sheet.Rows[1:] {
		leads = append(leads, leadFromRow(rowToStrings(row), idx, model.SourceCSVUpload))
	}

	zap.L().Info("source: parsed xlsx upload", zap.Int("leads", len(leads)))
	return leads, nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = c.String()
	}
	return cells
}
