package models

// Row is one parsed row of a dataset sheet.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Point holds columns A and B.
	Point Point `json:"point"`
	// Label holds column C.
	Label int `json:"label"`
}
