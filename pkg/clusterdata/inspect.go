package clusterdata

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect summarizes every sheet of a workbook: occupied range and, for
// sheets that parse as datasets, the number of rows per label.
func Inspect(path string) (*models.WorkbookSummary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newIOError("open", path, "", err)
	}
	defer f.Close()

	summary := &models.WorkbookSummary{
		BookName: filepath.Base(path),
		Sheets:   []models.SheetSummary{},
	}

	for _, sheetName := range f.GetSheetList() {
		bounds, err := parser.DetectRange(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}

		sheet := models.SheetSummary{
			Name:  sheetName,
			Rows:  bounds.Rows,
			Cols:  bounds.Cols,
			Range: bounds.Range,
		}

		// Sheets that are not datasets keep a nil Classes map.
		if rows, err := parser.ExtractRows(f, sheetName); err == nil && len(rows) > 0 {
			sheet.Classes = make(map[int]int)
			for _, row := range rows {
				sheet.Classes[row.Label]++
			}
		}

		summary.Sheets = append(summary.Sheets, sheet)
	}

	return summary, nil
}

// LoadDataset reads one dataset sheet back from a workbook written by
// WorkbookWriter.
func LoadDataset(path, sheetName string) (models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Dataset{}, newIOError("open", path, "", err)
	}
	defer f.Close()

	rows, err := parser.ExtractRows(f, sheetName)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("load %s (sheet %q): %w", path, sheetName, err)
	}

	ds := models.Dataset{
		Name:   sheetName,
		Points: make([]models.Point, len(rows)),
		Labels: make([]int, len(rows)),
	}
	for i, row := range rows {
		ds.Points[i] = row.Point
		ds.Labels[i] = row.Label
	}
	return ds, nil
}
