package geometry

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// PrimitiveList aggregates every primitive of a scene into one nearest-hit
// query. Bounded primitives are answered by the BVH when one has been built
// and UseBVH is set, otherwise by a linear scan. Unbounded primitives are
// always scanned linearly.
type PrimitiveList struct {
	Bounded   []core.BoundedPrimitive
	Unbounded []core.Primitive
	UseBVH    bool

	bvh *BVH
}

// NewPrimitiveList creates an empty primitive list
func NewPrimitiveList() *PrimitiveList {
	return &PrimitiveList{}
}

// AddBounded appends bounded primitives. Any previously built BVH is discarded.
func (pl *PrimitiveList) AddBounded(primitives ...core.BoundedPrimitive) {
	pl.Bounded = append(pl.Bounded, primitives...)
	pl.bvh = nil
}

// AddUnbounded appends primitives that cannot be placed in the BVH
func (pl *PrimitiveList) AddUnbounded(primitives ...core.Primitive) {
	pl.Unbounded = append(pl.Unbounded, primitives...)
}

// BuildBVH builds the acceleration structure over the bounded primitives
// and enables it. Bounded is reordered in the process.
func (pl *PrimitiveList) BuildBVH(sampler core.Sampler) error {
	if len(pl.Bounded) == 0 {
		return ErrNoBoundedPrimitives
	}
	pl.bvh = NewBVH(pl.Bounded, sampler)
	pl.UseBVH = true
	return nil
}

// BVH returns the built BVH, or nil
func (pl *PrimitiveList) BVH() *BVH {
	return pl.bvh
}

// Len returns the total number of primitives
func (pl *PrimitiveList) Len() int {
	return len(pl.Bounded) + len(pl.Unbounded)
}

// Hit returns the nearest intersection across all primitives
func (pl *PrimitiveList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if pl.bvh != nil && pl.UseBVH {
		closest, hitAnything := pl.bvh.Hit(ray, tMin, tMax)
		closestSoFar := tMax
		if hitAnything {
			closestSoFar = closest.T
		}
		return pl.hitUnbounded(ray, tMin, closestSoFar, closest, hitAnything)
	}
	return pl.HitLinear(ray, tMin, tMax)
}

// HitLinear answers the query by brute force, ignoring any BVH
func (pl *PrimitiveList) HitLinear(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, primitive := range pl.Bounded {
		if hit, isHit := primitive.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return pl.hitUnbounded(ray, tMin, closestSoFar, closest, hitAnything)
}

// hitUnbounded scans the unbounded primitives for hits strictly closer than closestSoFar
func (pl *PrimitiveList) hitUnbounded(ray core.Ray, tMin, closestSoFar float64, closest *core.HitRecord, hitAnything bool) (*core.HitRecord, bool) {
	for _, primitive := range pl.Unbounded {
		if hit, isHit := primitive.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}
	return closest, hitAnything
}
