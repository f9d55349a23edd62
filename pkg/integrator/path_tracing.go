package integrator

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// PathTracingIntegrator implements unidirectional path tracing with
// material-driven scattering and a gradient sky
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the radiance arriving along a primary ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, scene, sampler, 0)
}

// rayColor traces ray recursively; depth counts the bounces taken so far
func (pt *PathTracingIntegrator) rayColor(ray core.Ray, scene core.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth > pt.config.MaxDepth {
		return core.Vec3{}
	}

	hit, isHit := scene.Hit(ray, pt.config.TMin, pt.config.TMax)
	if !isHit {
		return BackgroundGradient(ray, scene)
	}

	scatter, didScatter := scene.GetMaterial(hit.Material).Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(
		pt.rayColor(scatter.Scattered, scene, sampler, depth+1))
}

// BackgroundGradient returns the sky color seen along a ray that escaped the scene
func BackgroundGradient(ray core.Ray, scene core.Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return bottomColor.Lerp(topColor, t)
}
