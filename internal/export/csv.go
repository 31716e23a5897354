package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// csvHeader is the column header row of the CSV export.
var csvHeader = []string{"Parameter", "Value", "Unit"}

// WriteCSV writes the export table as CSV, header row first.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Parameter, row.Value, row.Unit}); err != nil {
			return fmt.Errorf("writing csv row %q: %w", row.Parameter, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a CSV stream produced by WriteCSV back into table rows.
// The header row is required and discarded.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty, expected a %v header", csvHeader)
	}
	if records[0][0] != csvHeader[0] || records[0][1] != csvHeader[1] || records[0][2] != csvHeader[2] {
		return nil, fmt.Errorf("unexpected csv header %v", records[0])
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{Parameter: rec[0], Value: rec[1], Unit: rec[2]})
	}
	return rows, nil
}
