package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

const randomColorMaterials = 10

// referenceCameraConfig looks across the three large spheres, focused just
// in front of the look-at point
func referenceCameraConfig(aspectRatio float64) renderer.CameraConfig {
	lookFrom := core.NewVec3(3.5, 0.35, 1.0)
	lookAt := core.NewVec3(0, -0.4, -1)

	return renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   aspectRatio,
		Aperture:      0.06,
		FocusDistance: lookAt.Subtract(lookFrom).Length() - 0.5,
	}
}

// newReferenceBase creates the camera, the material arena, the three large
// spheres and the ground plane shared by the reference scenes
func newReferenceBase(name string, width, height int, sampler core.Sampler) (*Scene, error) {
	s, err := NewScene(name, width, height)
	if err != nil {
		return nil, err
	}
	if err := s.SetCamera(referenceCameraConfig(s.AspectRatio())); err != nil {
		return nil, err
	}

	mirror := s.AddMaterial(material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0.0))
	yellow := s.AddMaterial(material.NewLambertian(core.NewVec3(0.7, 0.7, 0.2)))
	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	s.AddMaterial(material.NewDielectric(1.7))
	s.AddMaterial(material.NewDielectric(1.7))
	s.AddMaterial(material.NewMetal(core.NewVec3(0.4, 0.5, 0.6), 0.1))
	for i := 0; i < randomColorMaterials; i++ {
		s.AddMaterial(material.NewLambertianRandomColor(sampler))
	}

	spheres := []struct {
		center   core.Vec3
		material core.MaterialID
	}{
		{core.NewVec3(0, 0, -1), mirror},
		{core.NewVec3(1, 0, -1), glass},
		{core.NewVec3(-1, 0, -1), yellow},
	}
	for _, sp := range spheres {
		if err := s.AddSphere(sp.center, 0.5, sp.material); err != nil {
			return nil, err
		}
	}

	if err := s.AddPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), ground); err != nil {
		return nil, err
	}
	return s, nil
}

// NewReferenceScene creates the benchmark scene: three large spheres and 300
// small spheres of random size, position and material resting on the ground
func NewReferenceScene(width, height int, sampler core.Sampler) (*Scene, error) {
	s, err := newReferenceBase("reference", width, height, sampler)
	if err != nil {
		return nil, err
	}

	for i := 0; i < 300; i++ {
		x := core.RandomInRange(sampler, -5, 5)
		z := core.RandomInRange(sampler, -6, 4)
		r := core.RandomInRange(sampler, 0.09, 0.11)
		id := core.MaterialID(sampler.IntN(len(s.Materials)))

		if err := s.AddSphere(core.NewVec3(x, -0.5+r, z), r, id); err != nil {
			return nil, err
		}
	}

	if err := s.BuildBVH(sampler); err != nil {
		return nil, err
	}
	return s, nil
}
