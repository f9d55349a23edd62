package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// MockScene is an empty scene viewed through a pinhole camera
type MockScene struct {
	camera      core.Camera
	topColor    core.Vec3
	bottomColor core.Vec3
}

func (m *MockScene) GetCamera() core.Camera                                  { return m.camera }
func (m *MockScene) Hit(core.Ray, float64, float64) (*core.HitRecord, bool) { return nil, false }
func (m *MockScene) GetMaterial(core.MaterialID) core.Material               { return nil }
func (m *MockScene) GetBackgroundColors() (core.Vec3, core.Vec3)             { return m.topColor, m.bottomColor }

func createMockScene(t *testing.T, aspectRatio float64) *MockScene {
	t.Helper()
	config := DefaultCameraConfig()
	config.AspectRatio = aspectRatio
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	return &MockScene{
		camera:      camera,
		topColor:    core.NewVec3(0.5, 0.7, 1.0),
		bottomColor: core.NewVec3(1, 1, 1),
	}
}

// constantIntegrator returns the same color for every ray
type constantIntegrator struct {
	color core.Vec3
}

func (c constantIntegrator) RayColor(core.Ray, core.Scene, core.Sampler) core.Vec3 {
	return c.color
}

// skyIntegrator returns white for rays pointing up and black otherwise
type skyIntegrator struct{}

func (skyIntegrator) RayColor(ray core.Ray, _ core.Scene, _ core.Sampler) core.Vec3 {
	if ray.Direction.Y > 0 {
		return core.NewVec3(1, 1, 1)
	}
	return core.Vec3{}
}

// noiseIntegrator returns a color drawn from the sampler
type noiseIntegrator struct{}

func (noiseIntegrator) RayColor(_ core.Ray, _ core.Scene, sampler core.Sampler) core.Vec3 {
	return sampler.Get3D()
}

func TestColorToRGB(t *testing.T) {
	tests := []struct {
		name    string
		color   core.Vec3
		r, g, b uint8
	}{
		{"black", core.NewVec3(0, 0, 0), 0, 0, 0},
		{"white", core.NewVec3(1, 1, 1), 255, 255, 255},
		{"gamma encoded mid grey", core.NewVec3(0.5, 0.5, 0.5), 186, 186, 186},
		{"over range clamps", core.NewVec3(4, 1.5, 1), 255, 255, 255},
		{"negative clamps", core.NewVec3(-1, 0, -0.5), 0, 0, 0},
		{"channels independent", core.NewVec3(1, 0, 0.5), 255, 0, 186},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ColorToRGB(tt.color)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("ColorToRGB(%v) = (%d,%d,%d), expected (%d,%d,%d)", tt.color, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRenderTileConstantColor(t *testing.T) {
	scene := createMockScene(t, 2)
	color := core.NewVec3(0.25, 0.5, 0.75)
	tr := NewTileRenderer(scene, constantIntegrator{color: color}, 20, 10, 4)

	tile := newCanvasTile(3, 1, 0, image.Rect(8, 0, 16, 8))
	stats := tr.RenderTile(tile, core.NewSeededSampler(1))

	r, g, b := ColorToRGB(color)
	for i := 0; i < len(tile.Pixels); i += 3 {
		if tile.Pixels[i] != r || tile.Pixels[i+1] != g || tile.Pixels[i+2] != b {
			t.Fatalf("Pixel byte %d: expected (%d,%d,%d), got (%d,%d,%d)",
				i, r, g, b, tile.Pixels[i], tile.Pixels[i+1], tile.Pixels[i+2])
		}
	}

	if stats.TotalTiles != 1 || stats.TotalPixels != 64 || stats.TotalSamples != 256 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestRenderTileVerticalOrientation(t *testing.T) {
	scene := createMockScene(t, 1)
	tr := NewTileRenderer(scene, skyIntegrator{}, 8, 8, 8)

	tile := newCanvasTile(0, 0, 0, image.Rect(0, 0, 8, 8))
	tr.RenderTile(tile, core.NewSeededSampler(1))

	// Row 0 is the top of the image and looks up into the sky
	if tile.Pixels[tile.Offset(3, 0)] != 255 {
		t.Errorf("Expected top row to be white, got %d", tile.Pixels[tile.Offset(3, 0)])
	}
	if tile.Pixels[tile.Offset(3, 7)] != 0 {
		t.Errorf("Expected bottom row to be black, got %d", tile.Pixels[tile.Offset(3, 7)])
	}
}

func TestRenderTileDeterministicForSeed(t *testing.T) {
	scene := createMockScene(t, 1)
	tr := NewTileRenderer(scene, noiseIntegrator{}, 16, 16, 2)

	first := newCanvasTile(0, 0, 0, image.Rect(0, 0, 16, 16))
	second := newCanvasTile(0, 0, 0, image.Rect(0, 0, 16, 16))
	other := newCanvasTile(0, 0, 0, image.Rect(0, 0, 16, 16))

	tr.RenderTile(first, core.NewSeededSampler(99))
	tr.RenderTile(second, core.NewSeededSampler(99))
	tr.RenderTile(other, core.NewSeededSampler(100))

	if string(first.Pixels) != string(second.Pixels) {
		t.Error("Expected identical pixels for identical seeds")
	}
	if string(first.Pixels) == string(other.Pixels) {
		t.Error("Expected different pixels for different seeds")
	}
}
