// Package models defines data structures for generated clustering datasets.
package models

import (
	"fmt"
	"sort"
)

// Point is a single 2D sample.
type Point struct {
	// X is the first coordinate.
	X float64 `json:"x"`
	// Y is the second coordinate.
	Y float64 `json:"y"`
}

// Dataset is a named set of labeled 2D points.
// Points and Labels are parallel: Labels[i] is the class of Points[i].
type Dataset struct {
	// Name is the dataset name, also used as the sheet name and plot title.
	Name string `json:"name"`
	// Points holds the samples in generation order.
	Points []Point `json:"points"`
	// Labels holds the integer class of each point.
	Labels []int `json:"labels"`
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.Points)
}

// XY returns the coordinates of the i-th point.
func (d Dataset) XY(i int) (x, y float64) {
	return d.Points[i].X, d.Points[i].Y
}

// Validate checks that Points and Labels have the same length.
func (d Dataset) Validate() error {
	if len(d.Points) != len(d.Labels) {
		return fmt.Errorf("dataset %q: %d points but %d labels", d.Name, len(d.Points), len(d.Labels))
	}
	return nil
}

// Classes returns the distinct labels in ascending order.
func (d Dataset) Classes() []int {
	seen := make(map[int]struct{})
	for _, l := range d.Labels {
		seen[l] = struct{}{}
	}
	classes := make([]int, 0, len(seen))
	for l := range seen {
		classes = append(classes, l)
	}
	sort.Ints(classes)
	return classes
}

// LabelRange returns the smallest and largest label.
// Both are zero for an empty dataset.
func (d Dataset) LabelRange() (lo, hi int) {
	for i, l := range d.Labels {
		if i == 0 || l < lo {
			lo = l
		}
		if i == 0 || l > hi {
			hi = l
		}
	}
	return lo, hi
}
