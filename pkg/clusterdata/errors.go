package clusterdata

import (
	"errors"
	"fmt"
)

// ErrSheetExists indicates the workbook already holds a sheet with the
// dataset's name. Rerunning in append or auto mode against an old output
// file ends here.
var ErrSheetExists = errors.New("sheet already exists")

// ErrIO indicates a filesystem or encoding failure on an output file.
var ErrIO = errors.New("output I/O failure")

// ErrInvalidConfig indicates a configuration rejected before any output is touched.
var ErrInvalidConfig = errors.New("invalid configuration")

// OutputError represents a failure writing one of the output files.
type OutputError struct {
	Path  string
	Sheet string // empty unless the failure concerns one sheet
	Op    string // "open", "write", "save", "render"
	Kind  error  // ErrSheetExists or ErrIO
	Err   error
}

func (e *OutputError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s %s (sheet %q): %v", e.Op, e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the classification and the underlying cause, so
// errors.Is matches ErrSheetExists/ErrIO as well as e.g. fs.ErrNotExist.
func (e *OutputError) Unwrap() []error {
	if e.Kind == nil || e.Kind == e.Err {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// newIOError classifies err as an I/O failure on path.
func newIOError(op, path, sheet string, err error) *OutputError {
	return &OutputError{Path: path, Sheet: sheet, Op: op, Kind: ErrIO, Err: err}
}

// newSheetExistsError reports a sheet-name collision in path.
func newSheetExistsError(path, sheet string) *OutputError {
	return &OutputError{Path: path, Sheet: sheet, Op: "write", Kind: ErrSheetExists, Err: ErrSheetExists}
}
