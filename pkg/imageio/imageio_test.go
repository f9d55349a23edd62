package imageio

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

func testImage() *renderer.Image {
	img := renderer.NewImage(2, 2)
	copy(img.Pix, []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 12, 34, 56,
	})
	return img
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testImage()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n12 34 56\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, buf.String())
	}
}

func TestSavePNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.png")
	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer file.Close()

	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := color.RGBAModel.Convert(decoded.At(1, 1)).(color.RGBA); got != (color.RGBA{R: 12, G: 34, B: 56, A: 255}) {
		t.Errorf("Expected (12,34,56) at (1,1), got %v", got)
	}
}

func TestSavePPMFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.PPM")
	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n2 2\n255\n")) {
		t.Errorf("Expected PPM header, got %q", data[:min(len(data), 16)])
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.jpg"), testImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"frame.ppm", true},
		{"out/FRAME.PNG", true},
		{"frame.jpg", false},
		{"frame", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := CheckFormat(tt.path)
			if tt.ok && err != nil {
				t.Errorf("Expected %q to be accepted, got %v", tt.path, err)
			}
			if !tt.ok && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("Expected ErrUnsupportedFormat for %q, got %v", tt.path, err)
			}
		})
	}
}

func TestSaveReportsCreateFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// A regular file cannot be used as a parent directory
	if err := SavePPM(filepath.Join(blocker, "out.ppm"), testImage()); err == nil {
		t.Error("Expected an error writing below a regular file")
	}
}
