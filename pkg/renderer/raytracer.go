package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/log"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Camera rays per pixel
	TileSize        int   // Edge length of a square tile
	NumWorkers      int   // Parallel workers (0 = use CPU count)
	Seed            int64 // Base seed; tile i samples with Seed+i
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          500,
		SamplesPerPixel: 100,
		TileSize:        64,
		NumWorkers:      0, // Auto-detect CPU count
		Seed:            42,
	}
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.TileSize <= 0 {
		return fmt.Errorf("%w: %dx%d, tile size %d", ErrInvalidDimensions, c.Width, c.Height, c.TileSize)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	return nil
}

// AccelerationReporter is implemented by scenes that can report the size of
// their acceleration structure
type AccelerationReporter interface {
	AccelerationNodes() int
}

// SizedScene is implemented by scenes whose camera was framed for a fixed
// image size
type SizedScene interface {
	Size() (width, height int)
}

// Raytracer renders a scene into an Image using a pool of tile workers
type Raytracer struct {
	scene      core.Scene
	integrator core.Integrator
	config     Config
	logger     log.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene core.Scene, integratorInst core.Integrator, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if sized, ok := scene.(SizedScene); ok {
		// The camera aspect ratio was derived from the scene size
		if width, height := sized.Size(); width != config.Width || height != config.Height {
			return nil, fmt.Errorf("%w: scene is %dx%d, render is %dx%d",
				ErrSizeMismatch, width, height, config.Width, config.Height)
		}
	}

	return &Raytracer{
		scene:      scene,
		integrator: integratorInst,
		config:     config,
		logger:     log.New("renderer"),
	}, nil
}

// Render traces every tile and assembles the image. If ctx is cancelled the
// partially assembled image is returned together with ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	canvas, err := NewTiledCanvas(rt.config.Width, rt.config.Height, rt.config.TileSize)
	if err != nil {
		return nil, RenderStats{}, err
	}

	tileRenderer := NewTileRenderer(rt.scene, rt.integrator, rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel)
	pool := NewWorkerPool(canvas, tileRenderer, rt.config.NumWorkers, rt.config.Seed)
	img := NewImage(rt.config.Width, rt.config.Height)

	stats := RenderStats{
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Workers:         pool.GetNumWorkers(),
	}
	if reporter, ok := rt.scene.(AccelerationReporter); ok {
		stats.BVHNodes = reporter.AccelerationNodes()
	}

	rt.logger.Noticef("Rendering %dx%d at %d spp: %d tiles on %d workers",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, canvas.NumTiles(), pool.GetNumWorkers())

	startTime := time.Now()
	var blitErr error
	for result := range pool.Start(ctx) {
		// Keep draining after a failure so the workers can exit
		if blitErr != nil {
			continue
		}
		if err := img.Blit(result.Tile); err != nil {
			blitErr = err
			continue
		}
		stats.Merge(result.Stats)
		rt.logger.Debugf("Tile %d (%d,%d) done by worker %d [%d/%d]",
			result.Tile.Index, result.Tile.TileX, result.Tile.TileY, result.WorkerID, stats.TotalTiles, canvas.NumTiles())
	}
	stats.Duration = time.Since(startTime)

	if blitErr != nil {
		return nil, stats, blitErr
	}
	if err := ctx.Err(); err != nil {
		rt.logger.Warningf("Rendering cancelled after %d of %d tiles", stats.TotalTiles, canvas.NumTiles())
		return img, stats, err
	}

	rt.logger.Noticef("Render completed in %v", stats.Duration.Round(time.Millisecond))
	return img, stats, nil
}
