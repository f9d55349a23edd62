package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/imageio"
	"github.com/df07/go-tiled-pathtracer/pkg/integrator"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
	"github.com/df07/go-tiled-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	out := ctx.String("out")
	if err := imageio.CheckFormat(out); err != nil {
		return err
	}

	config := renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		TileSize:        ctx.Int("tile-size"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}
	if err := config.Validate(); err != nil {
		return err
	}

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = ctx.Int("max-depth")
	if err := integratorConfig.Validate(); err != nil {
		return err
	}

	// Scene layout uses its own stream so it does not depend on the tile seeds
	sc, err := scene.New(ctx.String("scene"), config.Width, config.Height, core.NewSeededSampler(config.Seed))
	if err != nil {
		return err
	}
	if ctx.Bool("no-bvh") {
		logger.Notice("BVH disabled, using linear scan")
		sc.SetUseBVH(false)
	}
	logger.Infof("Scene %s: %d primitives, %d materials", sc.Name, sc.GetPrimitiveCount(), len(sc.Materials))
	logger.Debugf("Camera: %+v", sc.Camera.Config())

	rt, err := renderer.NewRaytracer(sc, integrator.NewPathTracingIntegrator(integratorConfig), config)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := rt.Render(renderCtx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		logger.Warning("render interrupted, saving partial frame")
	}

	if saveErr := imageio.Save(out, img); saveErr != nil {
		return saveErr
	}
	logger.Noticef("Wrote %s", out)

	// Display stats
	stats.WriteTable(ctx.App.Writer)

	return err
}
