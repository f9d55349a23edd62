package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// CameraConfig describes a thin-lens camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera faces
	Up            core.Vec3 // World up used to orient the image plane
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; zero gives a pinhole camera
	FocusDistance float64   // Distance to the plane in perfect focus
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0,
		FocusDistance: 1,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
	config          CameraConfig
}

// NewCamera builds a camera, rejecting configurations that cannot form an image plane
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.AspectRatio <= 0 || !(config.VFov > 0 && config.VFov < 180) {
		return nil, fmt.Errorf("%w: aspect ratio %v, vfov %v", ErrInvalidCamera, config.AspectRatio, config.VFov)
	}
	if config.FocusDistance <= 0 || config.Aperture < 0 {
		return nil, fmt.Errorf("%w: focus distance %v, aperture %v", ErrInvalidCamera, config.FocusDistance, config.Aperture)
	}

	view := config.LookFrom.Subtract(config.LookAt)
	if view.LengthSquared() == 0 {
		return nil, fmt.Errorf("%w: look-from equals look-at", ErrInvalidCamera)
	}
	w := view.Normalize()
	side := config.Up.Cross(w)
	if side.LengthSquared() == 0 {
		return nil, fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidCamera)
	}
	u := side.Normalize()
	v := w.Cross(u)

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight
	fd := config.FocusDistance

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * fd)).
		Subtract(v.Multiply(halfHeight * fd)).
		Subtract(w.Multiply(fd))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * fd),
		vertical:        v.Multiply(2 * halfHeight * fd),
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		config:          config,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0, 0) is the lower left corner of the image plane.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
