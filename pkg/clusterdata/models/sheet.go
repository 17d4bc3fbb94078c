package models

// SheetSummary describes a single dataset sheet.
type SheetSummary struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the height of the occupied range.
	Rows int `json:"rows"`
	// Cols is the width of the occupied range.
	Cols int `json:"cols"`
	// Range is the occupied cell range (e.g., "A1:C1000"). Empty for a blank sheet.
	Range string `json:"range,omitempty"`
	// Classes maps each label to its number of rows.
	Classes map[int]int `json:"classes,omitempty"`
}
