package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Bounds is the bounding box of the non-empty cells of a sheet.
type Bounds struct {
	// Range is the box in Excel notation (e.g., "A1:C1000"). Empty for a blank sheet.
	Range string
	// Rows and Cols are the box dimensions.
	Rows, Cols int
	// Cells is the number of non-empty cells inside the box.
	Cells int
}

// Dense reports whether every cell in the box is filled.
func (b Bounds) Dense() bool {
	return b.Cells == b.Rows*b.Cols
}

// DetectRange computes the bounding box of the non-empty cells in a sheet.
func DetectRange(f *excelize.File, sheetName string) (Bounds, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return Bounds{}, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return Bounds{}, nil
	}

	// Convert to Excel range notation
	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return Bounds{}, err
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return Bounds{}, err
	}

	return Bounds{
		Range: fmt.Sprintf("%s:%s", startCell, endCell),
		Rows:  maxRow - minRow + 1,
		Cols:  maxCol - minCol + 1,
		Cells: countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol),
	}, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
