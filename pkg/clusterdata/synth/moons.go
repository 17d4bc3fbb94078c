package synth

import (
	"fmt"
	"math"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
)

// Moons draws two interleaving half circles. The outer moon (label 0) gets
// n/2 points, the inner moon (label 1) the rest. Gaussian noise with
// standard deviation noise is added to both coordinates after shuffling.
func Moons(n int, noise float64, seed int64) (models.Dataset, error) {
	if n < 1 {
		return models.Dataset{}, fmt.Errorf("moons: n=%d: %w", n, ErrInvalidParameter)
	}
	if noise < 0 {
		return models.Dataset{}, fmt.Errorf("moons: noise=%g: %w", noise, ErrInvalidParameter)
	}

	nOut := n / 2
	nIn := n - nOut

	points := make([]models.Point, 0, n)
	labels := make([]int, 0, n)
	for _, t := range linspace(0, math.Pi, nOut, true) {
		points = append(points, models.Point{X: math.Cos(t), Y: math.Sin(t)})
		labels = append(labels, 0)
	}
	for _, t := range linspace(0, math.Pi, nIn, true) {
		points = append(points, models.Point{X: 1 - math.Cos(t), Y: 1 - math.Sin(t) - 0.5})
		labels = append(labels, 1)
	}

	r := newRand(seed)
	shuffle(r, points, labels)
	jitter(r, points, noise)
	return models.Dataset{Points: points, Labels: labels}, nil
}
