package geometry

import (
	"fmt"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// InfinitePlane represents an unbounded plane defined by a point and normal.
// It has no bounding box and is never placed in the BVH.
type InfinitePlane struct {
	Point    core.Vec3       // A point on the plane
	Normal   core.Vec3       // Unit normal
	Material core.MaterialID // Material of the plane
}

// NewInfinitePlane creates a new plane, normalizing the given normal.
// A zero-length normal panics.
func NewInfinitePlane(point, normal core.Vec3, material core.MaterialID) *InfinitePlane {
	if normal.LengthSquared() == 0 {
		panic(fmt.Sprintf("geometry: plane normal must be non-zero, got %v", normal))
	}
	return &InfinitePlane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *InfinitePlane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if denominator == 0 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}
