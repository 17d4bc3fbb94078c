package parser

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
	"github.com/xuri/excelize/v2"
)

// DatasetColumns is the number of columns in a dataset sheet: X, Y, Label.
const DatasetColumns = 3

// ExtractRows reads the X, Y and Label columns of a dataset sheet.
// Empty rows are skipped. There is no header row, so every non-empty row
// must hold two numbers followed by an integer label.
func ExtractRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var result []models.Row
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if isBlank(row) {
			continue
		}
		if len(row) < DatasetColumns {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", rowNum, DatasetColumns, len(row))
		}

		x, err := toFloat(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d, column A: %w", rowNum, err)
		}
		y, err := toFloat(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d, column B: %w", rowNum, err)
		}
		label, ok := parseValue(row[2]).(int64)
		if !ok {
			return nil, fmt.Errorf("row %d, column C: label %q is not an integer", rowNum, row[2])
		}

		result = append(result, models.Row{
			R:     rowNum,
			Point: models.Point{X: x, Y: y},
			Label: int(label),
		})
	}

	return result, nil
}

// isBlank reports whether every cell in row is empty.
func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// toFloat converts a numeric cell to float64.
func toFloat(s string) (float64, error) {
	switch v := parseValue(s).(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("value %q is not a number", s)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
