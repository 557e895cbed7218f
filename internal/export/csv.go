// Package export renders response row sets into downloadable formats. The
// exporters share the stats engine's field-normalization conventions: the
// column set is discovered per export from the union of fields across all
// rows, never from a fixed schema.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"personalysis/internal/model"
	"personalysis/internal/stats"
)

// baseColumns appear first in every export, in this order
var baseColumns = []string{
	"id",
	"surveyId",
	"respondentId",
	"completed",
	"satisfactionScore",
	"completionTimeSeconds",
	"userAgent",
	"createdAt",
}

// WriteCSV writes a metadata comment header followed by the discovered
// column header row and one row per response. String escaping follows
// encoding/csv (quotes doubled, fields quoted when they contain comma,
// quote, or newline); object values are JSON-stringified.
func WriteCSV(w io.Writer, responses []*model.SurveyResponse, survey *model.Survey, exportedAt time.Time) error {
	title, description := "", ""
	if survey != nil {
		title = survey.Title
		description = survey.Description
	}
	header := fmt.Sprintf("# Survey: %s\n# Description: %s\n# Export Date: %s\n# Total Responses: %d\n",
		title, description, exportedAt.Format(time.RFC3339), len(responses))
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	columns, rows := flattenResponses(responses)

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("export: write column header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// flattenResponses converts each response into a flat column->value map and
// returns the union of columns across all rows. Nested-object columns carry
// the response_, trait_, and demographic_ prefixes; within each prefix group
// discovered columns are sorted for a stable layout.
func flattenResponses(responses []*model.SurveyResponse) ([]string, []map[string]string) {
	seen := map[string]bool{}
	var discovered []string
	rows := make([]map[string]string, 0, len(responses))

	for _, r := range responses {
		row := map[string]string{
			"id":           r.ID,
			"surveyId":     r.SurveyID,
			"respondentId": r.RespondentID,
			"completed":    strconv.FormatBool(r.Completed),
			"userAgent":    r.UserAgent,
			"createdAt":    r.CreatedAt.Format(time.RFC3339),
		}
		if r.SatisfactionScore != 0 {
			row["satisfactionScore"] = strconv.Itoa(r.SatisfactionScore)
		}
		if r.CompletionTimeSeconds != nil {
			row["completionTimeSeconds"] = strconv.Itoa(*r.CompletionTimeSeconds)
		}

		if answers, ok := stats.DecodeMap(r.Responses); ok {
			for key, v := range answers {
				addCell(row, seen, &discovered, "response_"+key, cellValue(v))
			}
		}
		n := stats.Normalize(r)
		for _, t := range n.Traits {
			addCell(row, seen, &discovered, "trait_"+t.Name, strconv.FormatFloat(t.Score, 'f', -1, 64))
		}
		if demo, ok := stats.DecodeMap(r.Demographics); ok {
			for key, v := range demo {
				addCell(row, seen, &discovered, "demographic_"+key, cellValue(v))
			}
		}
		rows = append(rows, row)
	}

	sort.Strings(discovered)
	return append(append([]string{}, baseColumns...), discovered...), rows
}

func addCell(row map[string]string, seen map[string]bool, discovered *[]string, column, value string) {
	if !seen[column] {
		seen[column] = true
		*discovered = append(*discovered, column)
	}
	row[column] = value
}

// cellValue renders a loosely typed answer value for a spreadsheet cell.
// Scalars render directly; objects and arrays are JSON-stringified.
func cellValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}
