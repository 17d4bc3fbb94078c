// Package output serializes workbook summaries.
package output

import (
	"encoding/json"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
)

// ToJSON serializes a workbook summary.
func ToJSON(wb *models.WorkbookSummary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(wb, "", "  ")
	}
	return json.Marshal(wb)
}

// SheetToJSON serializes a single sheet summary.
func SheetToJSON(sheet *models.SheetSummary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheet, "", "  ")
	}
	return json.Marshal(sheet)
}
