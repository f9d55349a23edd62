package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

// NewSimpleScene creates a diffuse, a metal and a glass sphere on a ground plane
func NewSimpleScene(width, height int, sampler core.Sampler) (*Scene, error) {
	s, err := NewScene("simple", width, height)
	if err != nil {
		return nil, err
	}

	err = s.SetCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0.5, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          45,
		AspectRatio:   s.AspectRatio(),
		Aperture:      0,
		FocusDistance: 1,
	})
	if err != nil {
		return nil, err
	}

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	diffuse := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	gold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))
	glass := s.AddMaterial(material.NewDielectric(1.5))

	if err := s.AddSphere(core.NewVec3(0, 0, -1), 0.5, diffuse); err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(1, 0, -1), 0.5, gold); err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass); err != nil {
		return nil, err
	}
	if err := s.AddPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), ground); err != nil {
		return nil, err
	}

	if err := s.BuildBVH(sampler); err != nil {
		return nil, err
	}
	return s, nil
}
