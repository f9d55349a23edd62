package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// Builder constructs a scene for the given image size. Random scene layout
// and the BVH split axes are drawn from sampler.
type Builder func(width, height int, sampler core.Sampler) (*Scene, error)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	Build       Builder
}

var registry = map[string]SceneInfo{
	"reference": {
		Name:        "reference",
		Description: "Three large spheres and 300 small random spheres on a ground plane, depth of field",
		Build:       NewReferenceScene,
	},
	"sphere-grid": {
		Name:        "sphere-grid",
		Description: "The reference spheres with a regular 20x20 grid of small spheres",
		Build:       NewSphereGridScene,
	},
	"simple": {
		Name:        "simple",
		Description: "Diffuse, metal and glass spheres on a ground plane",
		Build:       NewSimpleScene,
	},
	"mirror-box": {
		Name:        "mirror-box",
		Description: "Camera inside six inward-facing perfect mirrors; renders black",
		Build:       NewMirrorBoxScene,
	},
}

// DefaultSceneName is the scene rendered when none is requested
const DefaultSceneName = "reference"

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the registry entry for name
func Lookup(name string) (SceneInfo, bool) {
	info, ok := registry[name]
	return info, ok
}

// New builds the named scene
func New(name string, width, height int, sampler core.Sampler) (*Scene, error) {
	info, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}

	s, err := info.Build(width, height, sampler)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
