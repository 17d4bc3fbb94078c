package synth

import (
	"fmt"
	"math"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
)

// Circles draws two concentric circles: n/2 points on the unit circle
// (label 0) and the rest on a circle of radius factor (label 1).
// Gaussian noise with standard deviation noise is added after shuffling.
func Circles(n int, noise, factor float64, seed int64) (models.Dataset, error) {
	if n < 1 {
		return models.Dataset{}, fmt.Errorf("circles: n=%d: %w", n, ErrInvalidParameter)
	}
	if noise < 0 {
		return models.Dataset{}, fmt.Errorf("circles: noise=%g: %w", noise, ErrInvalidParameter)
	}
	if factor < 0 || factor >= 1 {
		return models.Dataset{}, fmt.Errorf("circles: factor=%g must be in [0, 1): %w", factor, ErrInvalidParameter)
	}

	nOut := n / 2
	nIn := n - nOut

	points := make([]models.Point, 0, n)
	labels := make([]int, 0, n)
	for _, t := range linspace(0, 2*math.Pi, nOut, false) {
		points = append(points, models.Point{X: math.Cos(t), Y: math.Sin(t)})
		labels = append(labels, 0)
	}
	for _, t := range linspace(0, 2*math.Pi, nIn, false) {
		points = append(points, models.Point{X: factor * math.Cos(t), Y: factor * math.Sin(t)})
		labels = append(labels, 1)
	}

	r := newRand(seed)
	shuffle(r, points, labels)
	jitter(r, points, noise)
	return models.Dataset{Points: points, Labels: labels}, nil
}
