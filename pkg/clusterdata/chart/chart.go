// Package chart writes datasets as an interactive HTML page using go-echarts.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/figure"
	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
)

// SymbolSize is the diameter in pixels of a plotted point.
const SymbolSize = 4

// Render writes one scatter chart per dataset, in order, as a single HTML page.
func Render(w io.Writer, datasets []models.Dataset) error {
	page := components.NewPage()
	for _, ds := range datasets {
		sc, err := scatter(ds)
		if err != nil {
			return err
		}
		page.AddCharts(sc)
	}
	return page.Render(w)
}

// Save renders the page to path.
func Save(path string, datasets []models.Dataset) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Render(out, datasets)
}

// scatter builds the chart for one dataset. The label travels as the third
// value of each point and drives the visual map.
func scatter(ds models.Dataset) (*charts.Scatter, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	data := make([]opts.ScatterData, 0, ds.Len())
	for i, p := range ds.Points {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y, ds.Labels[i]}})
	}

	lo, hi := ds.LabelRange()
	if hi <= lo {
		hi = lo + 1
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Clustering datasets", Width: "600px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: ds.Name, Subtitle: fmt.Sprintf("points=%d classes=%d", ds.Len(), len(ds.Classes()))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:      opts.Bool(false),
			Min:       float32(lo),
			Max:       float32(hi),
			Dimension: "2",
			InRange:   &opts.VisualMapInRange{Color: figure.ViridisHex},
		}),
	)
	sc.AddSeries(ds.Name, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: SymbolSize}))
	return sc, nil
}
