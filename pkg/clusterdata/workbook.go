package clusterdata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
	"github.com/xuri/excelize/v2"
)

// errWorkbookClosed is returned by WriteSheet after Close or Discard.
var errWorkbookClosed = errors.New("workbook already closed")

// WorkbookWriter writes one sheet per dataset into a single .xlsx file.
// Nothing reaches the disk until Close; Discard drops the pending changes.
type WorkbookWriter struct {
	path string
	mode WriteMode // resolved: ModeCreate or ModeAppend
	file *excelize.File

	// placeholder is the default sheet of a new workbook, removed once a
	// dataset sheet exists. Empty once removed or reused.
	placeholder string
	first       string
	written     int
}

// OpenWorkbook prepares a workbook at path. ModeAuto is resolved here,
// from whether the file exists.
func OpenWorkbook(path string, mode WriteMode) (*WorkbookWriter, error) {
	resolved, err := resolveMode(path, mode)
	if err != nil {
		return nil, err
	}

	w := &WorkbookWriter{path: path, mode: resolved}
	switch resolved {
	case ModeCreate:
		w.file = excelize.NewFile()
		w.placeholder = w.file.GetSheetName(0)
	case ModeAppend:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, newIOError("open", path, "", err)
		}
		w.file = f
	}
	return w, nil
}

// resolveMode turns ModeAuto into ModeCreate or ModeAppend.
func resolveMode(path string, mode WriteMode) (WriteMode, error) {
	switch mode {
	case ModeCreate, ModeAppend:
		return mode, nil
	case ModeAuto:
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return ModeAppend, nil
		case errors.Is(err, fs.ErrNotExist):
			return ModeCreate, nil
		default:
			return "", newIOError("open", path, "", err)
		}
	}
	return "", fmt.Errorf("invalid mode: %q: %w", mode, ErrInvalidConfig)
}

// Mode returns the resolved write mode.
func (w *WorkbookWriter) Mode() WriteMode {
	return w.mode
}

// WriteSheet adds ds as a new sheet named ds.Name: columns X, Y and Label
// starting at A1, no header. A sheet of the same name already in the
// workbook fails with ErrSheetExists.
func (w *WorkbookWriter) WriteSheet(ds models.Dataset) error {
	if w.file == nil {
		return newIOError("write", w.path, ds.Name, errWorkbookClosed)
	}
	if err := ds.Validate(); err != nil {
		return err
	}

	if err := w.addSheet(ds.Name); err != nil {
		return err
	}

	sw, err := w.file.NewStreamWriter(ds.Name)
	if err != nil {
		return newIOError("write", w.path, ds.Name, err)
	}
	for i, p := range ds.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return newIOError("write", w.path, ds.Name, err)
		}
		if err := sw.SetRow(cell, []interface{}{p.X, p.Y, ds.Labels[i]}); err != nil {
			return newIOError("write", w.path, ds.Name, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return newIOError("write", w.path, ds.Name, err)
	}

	if w.written == 0 {
		w.first = ds.Name
	}
	w.written++
	return nil
}

// addSheet creates the named sheet, reusing or removing the placeholder
// sheet of a fresh workbook.
func (w *WorkbookWriter) addSheet(name string) error {
	if w.placeholder != "" && name == w.placeholder {
		w.placeholder = ""
		return nil
	}

	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return newIOError("write", w.path, name, err)
	}
	if idx >= 0 {
		return newSheetExistsError(w.path, name)
	}

	if _, err := w.file.NewSheet(name); err != nil {
		return newIOError("write", w.path, name, err)
	}
	if w.placeholder != "" {
		if err := w.file.DeleteSheet(w.placeholder); err != nil {
			return newIOError("write", w.path, w.placeholder, err)
		}
		w.placeholder = ""
	}
	return nil
}

// Close saves the workbook to disk and releases it. Calling Close again is a no-op.
func (w *WorkbookWriter) Close() (err error) {
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newIOError("close", w.path, "", cerr)
		}
	}()

	if w.mode == ModeCreate && w.first != "" {
		idx, err := f.GetSheetIndex(w.first)
		if err != nil {
			return newIOError("save", w.path, w.first, err)
		}
		f.SetActiveSheet(idx)
	}
	if err := f.SaveAs(w.path); err != nil {
		return newIOError("save", w.path, "", err)
	}
	return nil
}

// Discard releases the workbook without saving. It is a no-op after Close.
func (w *WorkbookWriter) Discard() error {
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	return f.Close()
}
