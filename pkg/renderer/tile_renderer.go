package renderer

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// DisplayGamma is the gamma encoding applied before quantization
const DisplayGamma = 2.2

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene           core.Scene
	integrator      core.Integrator
	width, height   int
	samplesPerPixel int
}

// NewTileRenderer creates a tile renderer for a width x height image
func NewTileRenderer(scene core.Scene, integratorInst core.Integrator, width, height, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		scene:           scene,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderTile fills tile.Pixels, drawing all randomness from sampler
func (tr *TileRenderer) RenderTile(tile *CanvasTile, sampler core.Sampler) RenderStats {
	camera := tr.scene.GetCamera()
	bounds := tile.Bounds

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			color := tr.samplePixel(camera, x, y, sampler)
			r, g, b := ColorToRGB(color)

			offset := tile.Offset(x, y)
			tile.Pixels[offset] = r
			tile.Pixels[offset+1] = g
			tile.Pixels[offset+2] = b
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalTiles:      1,
		TotalPixels:     pixels,
		TotalSamples:    pixels * tr.samplesPerPixel,
		SamplesPerPixel: tr.samplesPerPixel,
	}
}

// samplePixel averages samplesPerPixel jittered camera rays through pixel (x, y).
// y counts down from the top row while the camera's t counts up.
func (tr *TileRenderer) samplePixel(camera core.Camera, x, y int, sampler core.Sampler) core.Vec3 {
	var accum core.Vec3
	for s := 0; s < tr.samplesPerPixel; s++ {
		jitter := sampler.Get2D()
		u := (float64(x) + jitter.X) / float64(tr.width)
		v := (float64(tr.height-1-y) + jitter.Y) / float64(tr.height)

		ray := camera.GetRay(u, v, sampler)
		accum = accum.Add(tr.integrator.RayColor(ray, tr.scene, sampler))
	}
	return accum.Multiply(1.0 / float64(tr.samplesPerPixel))
}

// ColorToRGB gamma-encodes a linear color and quantizes it to bytes
func ColorToRGB(color core.Vec3) (r, g, b uint8) {
	corrected := color.Clamp(0, 1).GammaCorrect(DisplayGamma)
	return quantize(corrected.X), quantize(corrected.Y), quantize(corrected.Z)
}

func quantize(c float64) uint8 {
	v := math.Floor(c * 255.999)
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
