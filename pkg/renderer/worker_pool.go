package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile *CanvasTile
}

// TileResult contains a rendered tile
type TileResult struct {
	Tile     *CanvasTile
	Stats    RenderStats
	WorkerID int
}

// WorkerPool renders the tiles of a canvas in parallel. A single dispatcher
// claims tiles from the canvas and feeds the workers; results are delivered
// on one channel for a single collector.
type WorkerPool struct {
	canvas       *TiledCanvas
	tileRenderer *TileRenderer
	seed         int64
	numWorkers   int

	taskQueue   chan TileTask
	resultQueue chan TileResult
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(canvas *TiledCanvas, tileRenderer *TileRenderer, numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		canvas:       canvas,
		tileRenderer: tileRenderer,
		seed:         seed,
		numWorkers:   numWorkers,
		taskQueue:    make(chan TileTask, numWorkers),
		resultQueue:  make(chan TileResult, numWorkers),
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// TileSeed returns the sampler seed for a tile. It depends only on the tile
// index, so output does not depend on scheduling.
func (wp *WorkerPool) TileSeed(tile *CanvasTile) int64 {
	return wp.seed + int64(tile.Index)
}

// Start launches the dispatcher and the workers. The returned channel is
// closed once every dispatched tile has been delivered. Cancelling ctx stops
// dispatching; tiles already claimed by a worker still complete. The caller
// must drain the channel.
func (wp *WorkerPool) Start(ctx context.Context) <-chan TileResult {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(i)
	}

	go wp.dispatch(ctx)

	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()

	return wp.resultQueue
}

// dispatch drains the canvas into the task queue
func (wp *WorkerPool) dispatch(ctx context.Context) {
	defer close(wp.taskQueue) // No more tasks

	for {
		if ctx.Err() != nil {
			return
		}

		tile, ok := wp.canvas.NextTile()
		if !ok {
			return
		}

		select {
		case wp.taskQueue <- TileTask{Tile: tile}:
		case <-ctx.Done():
			return
		}
	}
}

// run is the main worker loop
func (wp *WorkerPool) run(id int) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		sampler := core.NewSeededSampler(wp.TileSeed(task.Tile))
		stats := wp.tileRenderer.RenderTile(task.Tile, sampler)

		wp.resultQueue <- TileResult{
			Tile:     task.Tile,
			Stats:    stats,
			WorkerID: id,
		}
	}
}
