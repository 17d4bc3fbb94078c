package clusterdata

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
)

func smallDataset(name string, n int) models.Dataset {
	ds := models.Dataset{Name: name}
	for i := 0; i < n; i++ {
		ds.Points = append(ds.Points, models.Point{X: float64(i) + 0.25, Y: float64(-i) / 3})
		ds.Labels = append(ds.Labels, i%2)
	}
	return ds
}

func writeWorkbook(t *testing.T, path string, mode WriteMode, datasets ...models.Dataset) error {
	t.Helper()

	wb, err := OpenWorkbook(path, mode)
	if err != nil {
		return err
	}
	defer wb.Discard()
	for _, ds := range datasets {
		if err := wb.WriteSheet(ds); err != nil {
			return err
		}
	}
	return wb.Close()
}

func sheetList(t *testing.T, path string) []string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	return f.GetSheetList()
}

func TestWorkbookCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, writeWorkbook(t, path, ModeCreate,
		smallDataset("Blobs", 5), smallDataset("Moons", 4), smallDataset("Circles", 3)))

	assert.Equal(t, []string{"Blobs", "Moons", "Circles"}, sheetList(t, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, 0, f.GetActiveSheetIndex())

	rows, err := f.GetRows("Moons", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"0.25", "0", "0"}, rows[0], "first row holds data, not a header")
	assert.Equal(t, []string{"1.25", "-0.3333333333333333", "1"}, rows[1])
}

func TestWorkbookCreateOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, writeWorkbook(t, path, ModeCreate, smallDataset("Blobs", 2)))
	require.NoError(t, writeWorkbook(t, path, ModeCreate, smallDataset("Blobs", 3), smallDataset("Extra", 1)))

	assert.Equal(t, []string{"Blobs", "Extra"}, sheetList(t, path))
	ds, err := LoadDataset(path, "Blobs")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
}

func TestWorkbookAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, writeWorkbook(t, path, ModeCreate, smallDataset("Blobs", 2)))
	require.NoError(t, writeWorkbook(t, path, ModeAppend, smallDataset("Moons", 2)))

	assert.Equal(t, []string{"Blobs", "Moons"}, sheetList(t, path))
}

func TestWorkbookAppendMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xlsx")
	err := writeWorkbook(t, path, ModeAppend, smallDataset("Blobs", 2))

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrSheetExists)
	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "append must not create the file")
}

func TestWorkbookSheetCollision(t *testing.T) {
	tests := []struct {
		name string
		mode WriteMode
	}{
		{"append", ModeAppend},
		{"auto", ModeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.xlsx")
			require.NoError(t, writeWorkbook(t, path, ModeCreate, smallDataset("Blobs", 2)))
			before, err := os.ReadFile(path)
			require.NoError(t, err)

			err = writeWorkbook(t, path, tt.mode, smallDataset("Blobs", 5))
			require.ErrorIs(t, err, ErrSheetExists)
			assert.NotErrorIs(t, err, ErrIO)

			var oerr *OutputError
			require.ErrorAs(t, err, &oerr)
			assert.Equal(t, "Blobs", oerr.Sheet)
			assert.Equal(t, path, oerr.Path)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, before, after, "a failed write must leave the file untouched")
		})
	}
}

func TestWorkbookDuplicateNameInOneRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	err := writeWorkbook(t, path, ModeCreate, smallDataset("Blobs", 2), smallDataset("Blobs", 2))
	assert.ErrorIs(t, err, ErrSheetExists)
}

func TestWorkbookAutoResolves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	wb, err := OpenWorkbook(path, ModeAuto)
	require.NoError(t, err)
	assert.Equal(t, ModeCreate, wb.Mode())
	require.NoError(t, wb.WriteSheet(smallDataset("Blobs", 1)))
	require.NoError(t, wb.Close())

	wb, err = OpenWorkbook(path, ModeAuto)
	require.NoError(t, err)
	assert.Equal(t, ModeAppend, wb.Mode())
	require.NoError(t, wb.Discard())
}

func TestWorkbookPlaceholderName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, writeWorkbook(t, path, ModeCreate, smallDataset("Sheet1", 2), smallDataset("Moons", 2)))
	assert.Equal(t, []string{"Sheet1", "Moons"}, sheetList(t, path))
}

func TestWorkbookWriteAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	wb, err := OpenWorkbook(path, ModeCreate)
	require.NoError(t, err)
	require.NoError(t, wb.WriteSheet(smallDataset("Blobs", 1)))
	require.NoError(t, wb.Close())
	require.NoError(t, wb.Close(), "second Close is a no-op")
	require.NoError(t, wb.Discard(), "Discard after Close is a no-op")

	assert.ErrorIs(t, wb.WriteSheet(smallDataset("Moons", 1)), ErrIO)
}

func TestWorkbookRejectsMismatchedDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	bad := models.Dataset{Name: "Bad", Points: make([]models.Point, 2), Labels: []int{1}}
	assert.Error(t, writeWorkbook(t, path, ModeCreate, bad))
}

func TestWorkbookSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.xlsx")
	err := writeWorkbook(t, path, ModeCreate, smallDataset("Blobs", 1))
	assert.ErrorIs(t, err, ErrIO)
}

func TestLoadDatasetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	want := smallDataset("Circles", 25)
	require.NoError(t, writeWorkbook(t, path, ModeCreate, want))

	got, err := LoadDataset(path, "Circles")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadDatasetErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, writeWorkbook(t, path, ModeCreate, smallDataset("Blobs", 2)))

	_, err := LoadDataset(path, "Moons")
	assert.Error(t, err)

	_, err = LoadDataset(filepath.Join(t.TempDir(), "missing.xlsx"), "Blobs")
	assert.ErrorIs(t, err, ErrIO)
}

func TestWorkbookDiscardLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, writeWorkbook(t, path, ModeCreate, smallDataset("Blobs", 2)))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	wb, err := OpenWorkbook(path, ModeAppend)
	require.NoError(t, err)
	require.NoError(t, wb.WriteSheet(smallDataset("Moons", 3)))
	require.NoError(t, wb.Discard())
	require.NoError(t, wb.Discard(), "second Discard is a no-op")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{"Blobs"}, sheetList(t, path))
}
