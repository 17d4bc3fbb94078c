package clusterdata

import (
	"log"

	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/chart"
	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/figure"
	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
)

// Result lists what a run produced.
type Result struct {
	// WorkbookPath is the saved workbook.
	WorkbookPath string
	// Mode is the write mode the workbook was opened with (never ModeAuto).
	Mode WriteMode
	// ImagePath is the saved figure.
	ImagePath string
	// HTMLPath is the chart page, empty when not requested.
	HTMLPath string
	// Datasets holds the generated data in sheet order.
	Datasets []models.Dataset
}

// Run generates the datasets, writes one sheet per dataset and one
// subplot per dataset in a single pass, saves the workbook, then saves
// the figure. Any failure aborts the run; files already written stay.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	datasets, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("generated %d datasets of %d samples (seed %d)", len(datasets), cfg.Samples, cfg.Seed)

	wb, err := OpenWorkbook(cfg.WorkbookPath, cfg.Mode)
	if err != nil {
		return nil, err
	}
	// No-op once Close has run; only a failed run has anything to drop.
	defer func() {
		if err := wb.Discard(); err != nil {
			log.Printf("discard %s: %v", cfg.WorkbookPath, err)
		}
	}()
	log.Printf("workbook %s opened in %s mode", cfg.WorkbookPath, wb.Mode())

	fig := figure.New(vg.Length(cfg.FigureWidth)*vg.Inch, vg.Length(cfg.FigureHeight)*vg.Inch)
	for _, ds := range datasets {
		if err := wb.WriteSheet(ds); err != nil {
			return nil, err
		}
		if err := fig.Add(ds); err != nil {
			return nil, &OutputError{Path: cfg.ImagePath, Sheet: ds.Name, Op: "render", Err: err}
		}
		log.Printf("dataset %s: %d rows, classes %v", ds.Name, ds.Len(), ds.Classes())
	}

	if err := wb.Close(); err != nil {
		return nil, err
	}

	if err := fig.Save(cfg.ImagePath); err != nil {
		return nil, newIOError("save", cfg.ImagePath, "", err)
	}

	res := &Result{
		WorkbookPath: cfg.WorkbookPath,
		Mode:         wb.Mode(),
		ImagePath:    cfg.ImagePath,
		Datasets:     datasets,
	}

	if cfg.HTMLPath != "" {
		if err := chart.Save(cfg.HTMLPath, datasets); err != nil {
			return nil, newIOError("save", cfg.HTMLPath, "", err)
		}
		res.HTMLPath = cfg.HTMLPath
	}

	return res, nil
}
