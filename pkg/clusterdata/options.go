// Package clusterdata generates toy clustering datasets, stores them in an
// Excel workbook and renders them as a scatter-plot figure.
package clusterdata

import (
	"fmt"
	"strings"
)

// WriteMode declares how the workbook file is opened.
type WriteMode string

const (
	// ModeCreate starts a new workbook, replacing any file at the path.
	ModeCreate WriteMode = "create"
	// ModeAppend adds sheets to an existing workbook. The file must exist.
	ModeAppend WriteMode = "append"
	// ModeAuto appends when the file exists and creates it otherwise.
	ModeAuto WriteMode = "auto"
)

// ParseWriteMode converts a mode name to a WriteMode.
func ParseWriteMode(s string) (WriteMode, error) {
	switch m := WriteMode(strings.ToLower(s)); m {
	case ModeCreate, ModeAppend, ModeAuto:
		return m, nil
	}
	return "", fmt.Errorf("invalid mode: %s (must be create, append, or auto): %w", s, ErrInvalidConfig)
}

// Default dataset names, in sheet and subplot order.
const (
	BlobsName   = "Blobs"
	MoonsName   = "Moons"
	CirclesName = "Circles"
)

// Config holds every parameter of a run.
type Config struct {
	// Samples is the number of points per dataset.
	Samples int
	// Seed drives all random draws.
	Seed int64

	// BlobCenters is the number of Gaussian clusters in the Blobs dataset.
	BlobCenters int
	// BlobStd is the per-cluster standard deviation.
	BlobStd float64
	// MoonsNoise is the standard deviation of the noise added to Moons.
	MoonsNoise float64
	// CirclesNoise is the standard deviation of the noise added to Circles.
	CirclesNoise float64
	// CirclesFactor is the inner circle radius relative to the outer one.
	CirclesFactor float64

	// WorkbookPath is the output .xlsx file.
	WorkbookPath string
	// Mode selects create or append for the workbook.
	Mode WriteMode
	// ImagePath is the output figure. The extension selects the format.
	ImagePath string
	// HTMLPath, when set, also writes an interactive chart page.
	HTMLPath string

	// FigureWidth and FigureHeight are the figure size in inches.
	FigureWidth  float64
	FigureHeight float64
}

// DefaultConfig returns the canonical configuration: 1000 samples, seed 42,
// three blob centers, 0.05 noise, inner circle at half radius.
func DefaultConfig() Config {
	return Config{
		Samples:       1000,
		Seed:          42,
		BlobCenters:   3,
		BlobStd:       1.0,
		MoonsNoise:    0.05,
		CirclesNoise:  0.05,
		CirclesFactor: 0.5,
		WorkbookPath:  "clustering_datasets.xlsx",
		Mode:          ModeAuto,
		ImagePath:     "data_visualization.png",
		FigureWidth:   15,
		FigureHeight:  5,
	}
}

// Validate rejects configurations that cannot produce a run.
func (c Config) Validate() error {
	var problems []string
	if c.Samples < 1 {
		problems = append(problems, fmt.Sprintf("samples must be positive, got %d", c.Samples))
	}
	if c.BlobCenters < 1 || c.BlobCenters > c.Samples {
		problems = append(problems, fmt.Sprintf("blob centers must be in [1, samples], got %d", c.BlobCenters))
	}
	if c.BlobStd < 0 || c.MoonsNoise < 0 || c.CirclesNoise < 0 {
		problems = append(problems, "noise levels must not be negative")
	}
	if c.CirclesFactor < 0 || c.CirclesFactor >= 1 {
		problems = append(problems, fmt.Sprintf("circles factor must be in [0, 1), got %g", c.CirclesFactor))
	}
	if c.WorkbookPath == "" {
		problems = append(problems, "workbook path is required")
	}
	if c.ImagePath == "" {
		problems = append(problems, "image path is required")
	}
	if c.FigureWidth <= 0 || c.FigureHeight <= 0 {
		problems = append(problems, "figure size must be positive")
	}
	if _, err := ParseWriteMode(string(c.Mode)); err != nil {
		problems = append(problems, fmt.Sprintf("unknown mode %q", c.Mode))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), ErrInvalidConfig)
	}
	return nil
}
