package core

// MaterialID indexes a material in the scene's material arena
type MaterialID int

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64    // Parameter t along the ray
	Point    Vec3       // Point of intersection
	Normal   Vec3       // Geometric unit normal of the primitive, not flipped toward the ray
	Material MaterialID // Material of the hit object
}

// Primitive is anything a ray can be intersected with
type Primitive interface {
	// Hit returns the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// BoundedPrimitive is a primitive with a finite bounding box, eligible for the BVH
type BoundedPrimitive interface {
	Primitive
	BoundingBox() AABB
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// Material interface for surfaces that can scatter rays. A false return
// means the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Camera generates primary rays for normalized screen coordinates
type Camera interface {
	GetRay(s, t float64, sampler Sampler) Ray
}

// Scene is the read-only view of a scene an integrator needs
type Scene interface {
	GetCamera() Camera
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	GetMaterial(id MaterialID) Material
	GetBackgroundColors() (topColor, bottomColor Vec3)
}

// Integrator computes the radiance carried back along a ray
type Integrator interface {
	RayColor(ray Ray, scene Scene, sampler Sampler) Vec3
}
