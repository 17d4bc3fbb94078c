package clusterdata

import (
	"fmt"

	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/models"
	"github.com/ukaji3/clusterdata-go/pkg/clusterdata/synth"
)

// Generate builds the Blobs, Moons and Circles datasets, in that order.
// Each generator is seeded with cfg.Seed, so equal configs give equal data.
func Generate(cfg Config) ([]models.Dataset, error) {
	type generator struct {
		name string
		gen  func() (models.Dataset, error)
	}
	generators := []generator{
		{BlobsName, func() (models.Dataset, error) {
			return synth.Blobs(cfg.Samples, cfg.BlobCenters, cfg.BlobStd, cfg.Seed)
		}},
		{MoonsName, func() (models.Dataset, error) {
			return synth.Moons(cfg.Samples, cfg.MoonsNoise, cfg.Seed)
		}},
		{CirclesName, func() (models.Dataset, error) {
			return synth.Circles(cfg.Samples, cfg.CirclesNoise, cfg.CirclesFactor, cfg.Seed)
		}},
	}

	datasets := make([]models.Dataset, 0, len(generators))
	for _, g := range generators {
		ds, err := g.gen()
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", g.name, err)
		}
		ds.Name = g.name
		datasets = append(datasets, ds)
	}
	return datasets, nil
}
