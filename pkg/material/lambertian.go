package material

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewLambertianRandomColor creates a lambertian material whose albedo is drawn
// once, uniformly in [0.1, 0.7) per channel
func NewLambertianRandomColor(sampler core.Sampler) *Lambertian {
	return NewLambertian(core.NewVec3(
		core.RandomInRange(sampler, 0.1, 0.7),
		core.RandomInRange(sampler, 0.1, 0.7),
		core.RandomInRange(sampler, 0.1, 0.7),
	))
}

// Scatter implements the Material interface for lambertian scattering.
// It never absorbs.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))
	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, target.Subtract(hit.Point)),
		Attenuation: l.Albedo,
	}, true
}
