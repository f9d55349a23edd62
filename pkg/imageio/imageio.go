// Package imageio writes rendered images to disk.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("imageio: unsupported output format")

// WritePPM encodes img as a plain-text (P3) PPM: a header followed by one
// "R G B" line per pixel, top row first
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}

	for i := 0; i+2 < len(img.Pix); i += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", img.Pix[i], img.Pix[i+1], img.Pix[i+2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePNG encodes img as an opaque PNG
func WritePNG(w io.Writer, img *renderer.Image) error {
	return png.Encode(w, img.ToRGBA())
}

// SavePPM writes img to path as PPM
func SavePPM(path string, img *renderer.Image) error {
	return save(path, img, WritePPM)
}

// SavePNG writes img to path as PNG
func SavePNG(path string, img *renderer.Image) error {
	return save(path, img, WritePNG)
}

// CheckFormat reports ErrUnsupportedFormat unless path ends in .ppm or .png
func CheckFormat(path string) error {
	_, err := encoderFor(path)
	return err
}

// Save picks the encoder from the file extension (.ppm or .png)
func Save(path string, img *renderer.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	return save(path, img, encode)
}

func encoderFor(path string) (func(io.Writer, *renderer.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return WritePPM, nil
	case ".png":
		return WritePNG, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func save(path string, img *renderer.Image, encode func(io.Writer, *renderer.Image) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("imageio: create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("imageio: close %s: %w", path, closeErr)
		}
	}()

	if err := encode(file, img); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return nil
}
