// Package synth generates the synthetic 2D datasets used to exercise clustering code.
//
// Every generator takes an explicit seed and draws from its own random
// stream, so equal arguments always produce equal datasets.
package synth

import (
	"errors"
	"math/rand/v2"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidParameter indicates a generator argument outside its domain.
var ErrInvalidParameter = errors.New("invalid generator parameter")

// streamID is the fixed PCG stream selector; only the seed varies between runs.
const streamID = 0x9e3779b97f4a7c15

// newRand returns a deterministic generator for seed.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), streamID))
}

// linspace returns n evenly spaced values over [lo, hi], or over [lo, hi)
// when endpoint is false.
func linspace(lo, hi float64, n int, endpoint bool) []float64 {
	switch {
	case n <= 0:
		return nil
	case !endpoint:
		return floats.Span(make([]float64, n+1), lo, hi)[:n]
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// shuffle permutes points and labels with the same permutation.
func shuffle(r *rand.Rand, points []models.Point, labels []int) {
	r.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
		labels[i], labels[j] = labels[j], labels[i]
	})
}

// jitter adds zero-mean Gaussian noise to every coordinate.
func jitter(r *rand.Rand, points []models.Point, std float64) {
	if std == 0 {
		return
	}
	g := distuv.Normal{Mu: 0, Sigma: std, Src: r}
	for i := range points {
		points[i].X += g.Rand()
		points[i].Y += g.Rand()
	}
}
