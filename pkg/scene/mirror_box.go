package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

// NewMirrorBoxScene places the camera inside a closed cube of perfect
// mirrors. No path can escape to the sky, so every path ends at the depth
// limit and the image is black.
func NewMirrorBoxScene(width, height int, sampler core.Sampler) (*Scene, error) {
	s, err := NewScene("mirror-box", width, height)
	if err != nil {
		return nil, err
	}

	err = s.SetCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0.5),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   s.AspectRatio(),
		Aperture:      0,
		FocusDistance: 1,
	})
	if err != nil {
		return nil, err
	}

	mirror := s.AddMaterial(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0))

	// Each wall sits one unit from the origin and faces inward
	inward := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}
	for _, normal := range inward {
		if err := s.AddPlane(normal.Negate(), normal, mirror); err != nil {
			return nil, err
		}
	}

	return s, nil
}
