package synth

import (
	"fmt"
	"math"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
	"gonum.org/v1/gonum/stat/distuv"
)

// CenterBox bounds each coordinate of a randomly placed blob center.
const (
	CenterBoxMin = -10.0
	CenterBoxMax = 10.0
)

// CenterSeparation is the minimum distance between two blob centers, in
// units of the cluster standard deviation.
const CenterSeparation = 6.0

// maxCenterDraws bounds the redraws spent placing one center.
const maxCenterDraws = 100

// Blobs draws n points from centers isotropic Gaussian clusters with
// standard deviation std. Centers are placed uniformly in the center box,
// each at least CenterSeparation*std from the earlier ones. When the box
// is too crowded for that, the farthest of maxCenterDraws candidates wins.
// Points are split evenly between centers, the remainder going one each to
// the first centers. Label i marks membership of center i.
func Blobs(n, centers int, std float64, seed int64) (models.Dataset, error) {
	if n < 1 {
		return models.Dataset{}, fmt.Errorf("blobs: n=%d: %w", n, ErrInvalidParameter)
	}
	if centers < 1 || centers > n {
		return models.Dataset{}, fmt.Errorf("blobs: centers=%d for n=%d: %w", centers, n, ErrInvalidParameter)
	}
	if std < 0 {
		return models.Dataset{}, fmt.Errorf("blobs: std=%g: %w", std, ErrInvalidParameter)
	}

	r := newRand(seed)
	box := distuv.Uniform{Min: CenterBoxMin, Max: CenterBoxMax, Src: r}
	centerPts := make([]models.Point, 0, centers)
	for len(centerPts) < centers {
		centerPts = append(centerPts, placeCenter(&box, centerPts, CenterSeparation*std))
	}

	points := make([]models.Point, 0, n)
	labels := make([]int, 0, n)
	for i, c := range centerPts {
		count := n / centers
		if i < n%centers {
			count++
		}
		nx := distuv.Normal{Mu: c.X, Sigma: std, Src: r}
		ny := distuv.Normal{Mu: c.Y, Sigma: std, Src: r}
		for j := 0; j < count; j++ {
			points = append(points, models.Point{X: nx.Rand(), Y: ny.Rand()})
			labels = append(labels, i)
		}
	}

	shuffle(r, points, labels)
	return models.Dataset{Points: points, Labels: labels}, nil
}

// placeCenter draws a center from box at least sep away from placed.
func placeCenter(box *distuv.Uniform, placed []models.Point, sep float64) models.Point {
	var best models.Point
	bestDist := math.Inf(-1)
	for draw := 0; draw < maxCenterDraws; draw++ {
		c := models.Point{X: box.Rand(), Y: box.Rand()}
		d := nearest(c, placed)
		if d > bestDist {
			best, bestDist = c, d
		}
		if d >= sep {
			break
		}
	}
	return best
}

// nearest returns the distance from p to the closest of pts, +Inf when pts is empty.
func nearest(p models.Point, pts []models.Point) float64 {
	d := math.Inf(1)
	for _, q := range pts {
		d = math.Min(d, math.Hypot(p.X-q.X, p.Y-q.Y))
	}
	return d
}
