// Package cmd implements the command line interface of the path tracer.
package cmd

import (
	"github.com/df07/go-tiled-pathtracer/pkg/integrator"
	"github.com/df07/go-tiled-pathtracer/pkg/log"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
	"github.com/df07/go-tiled-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// NewApp creates the command line application
func NewApp() *cli.App {
	defaults := renderer.DefaultConfig()

	// Free -v for verbose logging
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-tiled-pathtracer"
	app.Usage = "render scenes using tiled Monte-Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Value:  log.Notice.String(),
			Usage:  "minimum level to log (debug, info, notice, warning, error)",
			EnvVar: "PT_LOG_LEVEL",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PPM or PNG file",
			Description: `
Render one of the built-in scenes. The image is split into square tiles that
are rendered in parallel; each tile draws its random numbers from a sampler
seeded with the base seed plus the tile index, so the output depends only on
the seed and not on the number of workers.

The output format is chosen from the file extension (.ppm or .png).`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: scene.DefaultSceneName,
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:   "width",
					Value:  defaults.Width,
					Usage:  "frame width",
					EnvVar: "PT_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Value:  defaults.Height,
					Usage:  "frame height",
					EnvVar: "PT_HEIGHT",
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  defaults.SamplesPerPixel,
					Usage:  "samples per pixel",
					EnvVar: "PT_SPP",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: defaults.TileSize,
					Usage: "tile edge length in pixels",
				},
				cli.IntFlag{
					Name:   "workers",
					Value:  defaults.NumWorkers,
					Usage:  "number of render workers (0 = one per CPU)",
					EnvVar: "PT_WORKERS",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: integrator.DefaultConfig().MaxDepth,
					Usage: "maximum number of bounces per path",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "base random seed",
				},
				cli.BoolFlag{
					Name:  "no-bvh",
					Usage: "intersect bounded primitives by linear scan instead of the BVH",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.ppm",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
