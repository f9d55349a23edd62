package renderer

import (
	"context"
	"runtime"
	"testing"
)

func TestWorkerPoolDeliversEveryTileOnce(t *testing.T) {
	canvas, err := NewTiledCanvas(50, 30, 7)
	if err != nil {
		t.Fatalf("NewTiledCanvas failed: %v", err)
	}
	tr := NewTileRenderer(createMockScene(t, 50.0/30.0), constantIntegrator{}, 50, 30, 1)
	pool := NewWorkerPool(canvas, tr, 3, 0)

	seen := make(map[int]bool)
	workers := make(map[int]bool)
	for result := range pool.Start(context.Background()) {
		if seen[result.Tile.Index] {
			t.Errorf("Tile %d delivered twice", result.Tile.Index)
		}
		seen[result.Tile.Index] = true
		workers[result.WorkerID] = true

		if result.Stats.TotalPixels != result.Tile.Bounds.Dx()*result.Tile.Bounds.Dy() {
			t.Errorf("Tile %d: stats report %d pixels for bounds %v", result.Tile.Index, result.Stats.TotalPixels, result.Tile.Bounds)
		}
	}

	if len(seen) != canvas.NumTiles() {
		t.Errorf("Expected %d tiles, got %d", canvas.NumTiles(), len(seen))
	}
	for id := range workers {
		if id < 0 || id >= 3 {
			t.Errorf("Unexpected worker id %d", id)
		}
	}
}

func TestWorkerPoolTileSeed(t *testing.T) {
	canvas, err := NewTiledCanvas(10, 10, 5)
	if err != nil {
		t.Fatalf("NewTiledCanvas failed: %v", err)
	}
	pool := NewWorkerPool(canvas, nil, 1, 100)

	for i := 0; i < canvas.NumTiles(); i++ {
		tile, _ := canvas.At(i)
		if got := pool.TileSeed(tile); got != int64(100+i) {
			t.Errorf("Tile %d: expected seed %d, got %d", i, 100+i, got)
		}
	}
}

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	canvas, err := NewTiledCanvas(10, 10, 5)
	if err != nil {
		t.Fatalf("NewTiledCanvas failed: %v", err)
	}
	if got := NewWorkerPool(canvas, nil, 0, 0).GetNumWorkers(); got != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), got)
	}
}
