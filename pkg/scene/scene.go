// Package scene assembles cameras, primitives and materials into renderable
// scenes and provides the built-in scene catalogue.
package scene

import (
	"fmt"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/log"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering. It is built once
// and is read-only while rendering.
type Scene struct {
	Name        string
	Width       int
	Height      int
	Camera      *renderer.Camera
	Primitives  *geometry.PrimitiveList
	Materials   []core.Material // Indexed by core.MaterialID
	TopColor    core.Vec3       // Sky color straight up
	BottomColor core.Vec3       // Sky color straight down
}

// NewScene creates an empty scene with the default sky gradient
func NewScene(name string, width, height int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	return &Scene{
		Name:        name,
		Width:       width,
		Height:      height,
		Primitives:  geometry.NewPrimitiveList(),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor: core.NewVec3(1.0, 1.0, 1.0), // White horizon
	}, nil
}

// Size returns the image size the camera was framed for
func (s *Scene) Size() (width, height int) {
	return s.Width, s.Height
}

// AspectRatio returns width / height
func (s *Scene) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// SetCamera builds and installs the camera
func (s *Scene) SetCamera(config renderer.CameraConfig) error {
	camera, err := renderer.NewCamera(config)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.Camera = camera
	return nil
}

// AddMaterial appends a material to the arena and returns its id
func (s *Scene) AddMaterial(material core.Material) core.MaterialID {
	s.Materials = append(s.Materials, material)
	return core.MaterialID(len(s.Materials) - 1)
}

func (s *Scene) checkMaterial(id core.MaterialID) error {
	if id < 0 || int(id) >= len(s.Materials) {
		return fmt.Errorf("%w: %d (have %d)", ErrUnknownMaterial, id, len(s.Materials))
	}
	return nil
}

// AddSphere adds a sphere after validating its radius and material
func (s *Scene) AddSphere(center core.Vec3, radius float64, material core.MaterialID) error {
	if !(radius > 0) {
		return fmt.Errorf("%w: sphere radius %v", ErrInvalidShape, radius)
	}
	if err := s.checkMaterial(material); err != nil {
		return err
	}
	s.Primitives.AddBounded(geometry.NewSphere(center, radius, material))
	return nil
}

// AddPlane adds an infinite plane after validating its normal and material
func (s *Scene) AddPlane(point, normal core.Vec3, material core.MaterialID) error {
	if normal.LengthSquared() == 0 {
		return fmt.Errorf("%w: plane normal is zero", ErrInvalidShape)
	}
	if err := s.checkMaterial(material); err != nil {
		return err
	}
	s.Primitives.AddUnbounded(geometry.NewInfinitePlane(point, normal, material))
	return nil
}

// BuildBVH builds the acceleration structure over the bounded primitives
func (s *Scene) BuildBVH(sampler core.Sampler) error {
	if err := s.Primitives.BuildBVH(sampler); err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}

	stats := s.Primitives.BVH().Stats()
	logger.Infof("Built BVH for %s: %d primitives, %d nodes (%d leaves), depth %d",
		s.Name, s.Primitives.BVH().Len(), stats.TotalNodes, stats.LeafNodes, stats.MaxDepth)
	return nil
}

// SetUseBVH selects between the BVH and a linear scan of bounded primitives
func (s *Scene) SetUseBVH(enabled bool) {
	s.Primitives.UseBVH = enabled && s.Primitives.BVH() != nil
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene %s: %w: no camera", s.Name, renderer.ErrInvalidCamera)
	}
	if len(s.Materials) == 0 {
		return fmt.Errorf("scene %s: %w: no materials", s.Name, ErrUnknownMaterial)
	}
	return nil
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() core.Camera {
	return s.Camera
}

// Hit returns the nearest intersection with any primitive
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return s.Primitives.Hit(ray, tMin, tMax)
}

// GetMaterial returns the material with the given id
func (s *Scene) GetMaterial(id core.MaterialID) core.Material {
	return s.Materials[id]
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// AccelerationNodes reports the BVH node count, or zero when it is not in use
func (s *Scene) AccelerationNodes() int {
	if !s.Primitives.UseBVH || s.Primitives.BVH() == nil {
		return 0
	}
	return s.Primitives.BVH().Stats().TotalNodes
}

// GetPrimitiveCount returns the total number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Primitives.Len()
}
