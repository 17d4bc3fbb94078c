package models

// WorkbookSummary describes a dataset workbook read back from disk.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetSummary `json:"sheets"`
}

// SheetNames returns the sheet names in workbook order.
func (w *WorkbookSummary) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
