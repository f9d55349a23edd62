package renderer

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a packed 8-bit RGB framebuffer, row 0 at the top
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 3*width*height),
	}
}

// Bounds returns the image rectangle
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// RGB returns the color of pixel (x, y)
func (img *Image) RGB(x, y int) (r, g, b uint8) {
	i := 3 * (y*img.Width + x)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// Blit copies a rendered tile into its rectangle of the image
func (img *Image) Blit(tile *CanvasTile) error {
	if !tile.Bounds.In(img.Bounds()) || len(tile.Pixels) != 3*tile.Bounds.Dx()*tile.Bounds.Dy() {
		return fmt.Errorf("%w: tile %d bounds %v, image %dx%d", ErrTileMismatch, tile.Index, tile.Bounds, img.Width, img.Height)
	}

	rowBytes := 3 * tile.Bounds.Dx()
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		dst := 3 * (y*img.Width + tile.Bounds.Min.X)
		src := tile.Offset(tile.Bounds.Min.X, y)
		copy(img.Pix[dst:dst+rowBytes], tile.Pixels[src:src+rowBytes])
	}
	return nil
}

// ToRGBA converts the image for encoders from the standard library
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(img.Bounds())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.RGB(x, y)
			rgba.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return rgba
}
