package material

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// The ray is always scattered and the attenuation is always white.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)
	direction := d.scatterDirection(rayIn, hit, sampler)

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

func (d *Dielectric) scatterDirection(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) core.Vec3 {
	incidence := rayIn.Direction.Dot(hit.Normal)
	length := rayIn.Direction.Length()

	var refractNormal core.Vec3
	var refractionRatio, cosine float64
	if incidence > 0 {
		// Exiting the material (glass to air)
		refractNormal = hit.Normal.Negate()
		refractionRatio = d.RefractiveIndex
		cosine = d.RefractiveIndex * incidence / length
	} else {
		// Entering the material (air to glass)
		refractNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractiveIndex
		cosine = -incidence / length
	}

	refracted, canRefract := Refract(rayIn.Direction, refractNormal, refractionRatio)
	if !canRefract {
		return Reflect(rayIn.Direction, hit.Normal)
	}

	if sampler.Get1D() < Reflectance(cosine, d.RefractiveIndex) {
		return Reflect(rayIn.Direction, hit.Normal)
	}
	return refracted
}
