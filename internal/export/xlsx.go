package export

import (
	"bytes"
	"encoding/csv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/acquireiq/enrich-cli/internal/model"
)

// WriteXLSX writes leads to an XLSX workbook at path. Rows come from the
// same format mappers as WriteCSV, so both outputs stay column-identical.
func WriteXLSX(path string, format Format, leads []model.ScoredLead) error {
	data, err := marshal(format, leads)
	if err != nil {
		return err
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return eris.Wrap(err, "export: reparse rows")
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	for _, record := range records {
		row := sheet.AddRow()
		for _, field := range record {
			row.AddCell().SetString(field)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save xlsx")
	}
	return nil
}
