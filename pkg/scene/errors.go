package scene

import "errors"

var (
	ErrUnknownScene    = errors.New("scene: unknown scene")
	ErrUnknownMaterial = errors.New("scene: material id out of range")
	ErrInvalidSize     = errors.New("scene: image size must be positive")
	ErrInvalidShape    = errors.New("scene: invalid primitive parameters")
)
