package renderer

import (
	"fmt"
	"image"
	"sync"
)

// CanvasTile is a rectangular region of the image together with its
// rendered pixels. Pixels holds packed RGB bytes, row-major, relative to
// Bounds.Min.
type CanvasTile struct {
	Index  int             // Position in the canvas iteration order
	TileX  int             // Tile column
	TileY  int             // Tile row
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Pixels []byte
}

func newCanvasTile(index, tileX, tileY int, bounds image.Rectangle) *CanvasTile {
	return &CanvasTile{
		Index:  index,
		TileX:  tileX,
		TileY:  tileY,
		Bounds: bounds,
		Pixels: make([]byte, 3*bounds.Dx()*bounds.Dy()),
	}
}

// Offset returns the index of the red byte of image pixel (x, y) in Pixels
func (t *CanvasTile) Offset(x, y int) int {
	return 3 * ((y-t.Bounds.Min.Y)*t.Bounds.Dx() + (x - t.Bounds.Min.X))
}

// TiledCanvas partitions a width x height image into tiles handed out in
// row-major order (x fastest). NextTile is safe for concurrent use.
type TiledCanvas struct {
	width, height int
	tileSize      int
	tilesX        int
	tilesY        int

	mu   sync.Mutex
	next int
}

// NewTiledCanvas creates a canvas of ceil(width/tileSize) x ceil(height/tileSize) tiles
func NewTiledCanvas(width, height, tileSize int) (*TiledCanvas, error) {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, tile size %d", ErrInvalidDimensions, width, height, tileSize)
	}

	return &TiledCanvas{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tilesX:   (width + tileSize - 1) / tileSize, // Ceiling division
		tilesY:   (height + tileSize - 1) / tileSize,
	}, nil
}

// Width returns the image width in pixels
func (c *TiledCanvas) Width() int { return c.width }

// Height returns the image height in pixels
func (c *TiledCanvas) Height() int { return c.height }

// TileSize returns the nominal tile edge length
func (c *TiledCanvas) TileSize() int { return c.tileSize }

// NumTiles returns the total number of tiles
func (c *TiledCanvas) NumTiles() int {
	return c.tilesX * c.tilesY
}

// At returns a fresh tile for index i. Edge tiles are clamped to the image.
func (c *TiledCanvas) At(i int) (*CanvasTile, bool) {
	if i < 0 || i >= c.NumTiles() {
		return nil, false
	}

	tileX := i % c.tilesX
	tileY := i / c.tilesX
	x0 := tileX * c.tileSize
	y0 := tileY * c.tileSize
	x1 := min(x0+c.tileSize, c.width) // Don't exceed image bounds
	y1 := min(y0+c.tileSize, c.height)

	return newCanvasTile(i, tileX, tileY, image.Rect(x0, y0, x1, y1)), true
}

// NextTile returns the next unclaimed tile. The sequence cannot be
// restarted: once exhausted it keeps returning (nil, false).
func (c *TiledCanvas) NextTile() (*CanvasTile, bool) {
	c.mu.Lock()
	i := c.next
	if i < c.NumTiles() {
		c.next++
	}
	c.mu.Unlock()

	return c.At(i)
}
