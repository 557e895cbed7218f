package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"personalysis/internal/model"
)

// WriteExcel writes the same flattened rows as the CSV export into an XLSX
// workbook: a Summary sheet with the export metadata and a Responses sheet
// with the discovered columns.
func WriteExcel(w io.Writer, responses []*model.SurveyResponse, survey *model.Survey, exportedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	const responseSheet = "Responses"

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	title, description := "", ""
	if survey != nil {
		title = survey.Title
		description = survey.Description
	}
	summary := [][]interface{}{
		{"Survey", title},
		{"Description", description},
		{"Export Date", exportedAt.Format(time.RFC3339)},
		{"Total Responses", len(responses)},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("export: summary cell: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("export: summary row: %w", err)
		}
	}

	if _, err := f.NewSheet(responseSheet); err != nil {
		return fmt.Errorf("export: create sheet: %w", err)
	}
	columns, rows := flattenResponses(responses)

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(responseSheet, "A1", &header); err != nil {
		return fmt.Errorf("export: header row: %w", err)
	}
	for i, row := range rows {
		record := make([]interface{}, len(columns))
		for j, col := range columns {
			record[j] = row[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: row cell: %w", err)
		}
		if err := f.SetSheetRow(responseSheet, cell, &record); err != nil {
			return fmt.Errorf("export: data row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}
