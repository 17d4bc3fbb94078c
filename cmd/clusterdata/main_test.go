package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func generateArgs(dir string, extra ...string) []string {
	args := []string{
		"--samples", "60",
		"--workbook", filepath.Join(dir, "clustering_datasets.xlsx"),
		"--image", filepath.Join(dir, "data_visualization.png"),
	}
	return append(args, extra...)
}

func TestGeneratePrintsTwoLines(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := execute(t, generateArgs(dir)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Data saved to "+filepath.Join(dir, "clustering_datasets.xlsx"), lines[0])
	assert.Equal(t, "Visualization of data: "+filepath.Join(dir, "data_visualization.png"), lines[1])

	assert.FileExists(t, filepath.Join(dir, "clustering_datasets.xlsx"))
	assert.FileExists(t, filepath.Join(dir, "data_visualization.png"))
}

func TestGenerateRerunFails(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, generateArgs(dir)...)
	require.NoError(t, err)

	stdout, stderr, err := execute(t, generateArgs(dir)...)
	require.ErrorIs(t, err, clusterdata.ErrSheetExists)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "--mode create")
}

func TestGenerateCreateModeReplaces(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, generateArgs(dir)...)
	require.NoError(t, err)

	_, _, err = execute(t, generateArgs(dir, "--mode", "create", "--seed", "7")...)
	require.NoError(t, err)
}

func TestGenerateHTMLLine(t *testing.T) {
	dir := t.TempDir()
	html := filepath.Join(dir, "datasets.html")
	stdout, _, err := execute(t, generateArgs(dir, "--html", html)...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Interactive chart: "+html)
	assert.FileExists(t, html)
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"--mode", "replace"}},
		{"zero samples", []string{"--samples", "0"}},
		{"factor out of range", []string{"--circles-factor", "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append(generateArgs(dir), tt.args...)...)
			assert.ErrorIs(t, err, clusterdata.ErrInvalidConfig)
		})
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, generateArgs(dir)...)
	require.NoError(t, err)

	stdout, _, err := execute(t, "inspect", filepath.Join(dir, "clustering_datasets.xlsx"))
	require.NoError(t, err)

	var summary struct {
		Sheets []struct {
			Name  string `json:"name"`
			Rows  int    `json:"rows"`
			Cols  int    `json:"cols"`
			Range string `json:"range"`
		} `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	require.Len(t, summary.Sheets, 3)
	for i, name := range []string{"Blobs", "Moons", "Circles"} {
		assert.Equal(t, name, summary.Sheets[i].Name)
		assert.Equal(t, 60, summary.Sheets[i].Rows)
		assert.Equal(t, 3, summary.Sheets[i].Cols)
		assert.Equal(t, "A1:C60", summary.Sheets[i].Range)
	}
}

func TestInspectOutputFiles(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, generateArgs(dir)...)
	require.NoError(t, err)

	out := filepath.Join(dir, "summary.json")
	sheets := filepath.Join(dir, "sheets")
	stdout, _, err := execute(t, "inspect", "--pretty", "-o", out, "--sheets-dir", sheets,
		filepath.Join(dir, "clustering_datasets.xlsx"))
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")

	for _, name := range []string{"Blobs", "Moons", "Circles"} {
		assert.FileExists(t, filepath.Join(sheets, name+".json"))
	}
}

func TestInspectMissingFile(t *testing.T) {
	_, _, err := execute(t, "inspect", filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
