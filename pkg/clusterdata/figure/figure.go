// Package figure renders datasets as a row of scatter plots using gonum/plot.
package figure

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GlyphRadius is the radius of a single scatter point.
var GlyphRadius = vg.Points(1.5)

// ErrEmptyFigure is returned when saving a figure without subplots.
var ErrEmptyFigure = errors.New("figure has no subplots")

// Figure is a 1×N grid of scatter plots, one per dataset, in the order added.
type Figure struct {
	width, height vg.Length
	plots         []*plot.Plot
}

// New creates an empty figure of the given overall size.
func New(width, height vg.Length) *Figure {
	return &Figure{width: width, height: height}
}

// Len returns the number of subplots.
func (f *Figure) Len() int {
	return len(f.plots)
}

// Add appends a subplot for ds: titled with the dataset name, axes "X" and
// "Y", each point colored by its label.
func (f *Figure) Add(ds models.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = ds.Name
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	if ds.Len() > 0 {
		s, err := labeledScatter(ds)
		if err != nil {
			return fmt.Errorf("subplot %q: %w", ds.Name, err)
		}
		p.Add(s)
	}

	f.plots = append(f.plots, p)
	return nil
}

// labeledScatter builds a scatter whose glyph colors follow the labels.
func labeledScatter(ds models.Dataset) (*plotter.Scatter, error) {
	lo, hi := ds.LabelRange()
	cmap, err := LabelColorMap(lo, hi)
	if err != nil {
		return nil, err
	}

	colors := make([]color.Color, ds.Len())
	for i, l := range ds.Labels {
		c, err := cmap.At(float64(l))
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", l, err)
		}
		colors[i] = c
	}

	s, err := plotter.NewScatter(ds)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = GlyphRadius
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		gs := s.GlyphStyle
		gs.Color = colors[i]
		return gs
	}
	return s, nil
}

// Save lays the subplots out side by side and writes the figure to path.
// The file extension picks the format (png, jpg, svg, pdf, eps, tif);
// a path without an extension is written as PNG.
func (f *Figure) Save(path string) (err error) {
	if len(f.plots) == 0 {
		return ErrEmptyFigure
	}

	c, err := draw.NewFormattedCanvas(f.width, f.height, formatOf(path))
	if err != nil {
		return err
	}

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(f.plots),
		PadX:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align([][]*plot.Plot{f.plots}, tiles, draw.New(c))
	for j, p := range f.plots {
		p.Draw(canvases[0][j])
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = c.WriteTo(out)
	return err
}

// formatOf returns the image format implied by the file extension.
func formatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "png"
	}
	return ext
}
