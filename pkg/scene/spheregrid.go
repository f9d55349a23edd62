package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// NewSphereGridScene creates the reference layout with the small spheres
// on a regular 20x20 grid, cycling through every material
func NewSphereGridScene(width, height int, sampler core.Sampler) (*Scene, error) {
	s, err := newReferenceBase("sphere-grid", width, height, sampler)
	if err != nil {
		return nil, err
	}

	gridSize := 20
	spacing := 0.5
	for i := 0; i < gridSize; i++ {
		x := -5.0 + spacing*float64(i)
		for j := 0; j < gridSize; j++ {
			z := -5.0 + spacing*float64(j)
			id := core.MaterialID((i*gridSize + j) % len(s.Materials))

			if err := s.AddSphere(core.NewVec3(x, -0.4, z), 0.1, id); err != nil {
				return nil, err
			}
		}
	}

	if err := s.BuildBVH(sampler); err != nil {
		return nil, err
	}
	return s, nil
}
