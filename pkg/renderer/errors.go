package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: width, height and tile size must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidCamera     = errors.New("renderer: invalid camera configuration")
	ErrTileMismatch      = errors.New("renderer: tile does not fit the image")
	ErrSizeMismatch      = errors.New("renderer: render size differs from the scene size")
)
