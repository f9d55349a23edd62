package geometry

import "errors"

var (
	ErrNoBoundedPrimitives = errors.New("geometry: no bounded primitives to build a BVH over")
)
