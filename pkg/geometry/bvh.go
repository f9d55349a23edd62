package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// bvhNode is one entry of the BVH node arena. A leaf references exactly one
// primitive; an interior node references exactly two children.
type bvhNode struct {
	BoundingBox core.AABB
	Left        int // child index, unused at leaves
	Right       int // child index, unused at leaves
	Primitive   int // primitive index, -1 for interior nodes
}

func (n *bvhNode) isLeaf() bool {
	return n.Primitive >= 0
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes are stored in a flat arena in pre-order, the root at index 0.
// A BVH is immutable once built and safe for concurrent queries.
type BVH struct {
	nodes      []bvhNode
	primitives []core.BoundedPrimitive
	stats      BVHStats
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
}

// NewBVH constructs a BVH over the given primitives. The slice is sorted in
// place during construction and retained by the tree.
//
// The split axis at each level is drawn uniformly at random from the
// sampler. Building over zero primitives, or over a primitive whose box has
// Min > Max on some axis, is a programming error and panics.
func NewBVH(primitives []core.BoundedPrimitive, sampler core.Sampler) *BVH {
	if len(primitives) == 0 {
		panic("geometry: cannot build a BVH over zero primitives")
	}

	bvh := &BVH{
		nodes:      make([]bvhNode, 0, 2*len(primitives)-1),
		primitives: primitives,
	}
	bvh.build(0, len(primitives), 0, sampler)
	return bvh
}

// build appends the subtree covering primitives[lo:hi] and returns its node index
func (bvh *BVH) build(lo, hi, depth int, sampler core.Sampler) int {
	index := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{})
	bvh.stats.TotalNodes++
	bvh.stats.MaxDepth = max(bvh.stats.MaxDepth, depth)

	if hi-lo == 1 {
		box := bvh.primitives[lo].BoundingBox()
		if !box.IsValid() {
			panic(fmt.Sprintf("geometry: primitive %d has an inverted bounding box %v", lo, box))
		}
		bvh.stats.LeafNodes++
		bvh.nodes[index] = bvhNode{
			BoundingBox: box,
			Primitive:   lo,
		}
		return index
	}

	axis := sampler.IntN(3)
	sortPrimitivesByAxis(bvh.primitives[lo:hi], axis)

	// Left half takes the extra primitive when the count is odd
	mid := lo + (hi-lo+1)/2
	left := bvh.build(lo, mid, depth+1, sampler)
	right := bvh.build(mid, hi, depth+1, sampler)

	bvh.nodes[index] = bvhNode{
		BoundingBox: bvh.nodes[left].BoundingBox.Union(bvh.nodes[right].BoundingBox),
		Left:        left,
		Right:       right,
		Primitive:   -1,
	}
	return index
}

// sortPrimitivesByAxis sorts primitives by the lower corner of their bounding box along axis
func sortPrimitivesByAxis(primitives []core.BoundedPrimitive, axis int) {
	sort.Slice(primitives, func(i, j int) bool {
		return primitives[i].BoundingBox().Min.Axis(axis) < primitives[j].BoundingBox().Min.Axis(axis)
	})
}

// Hit returns the nearest intersection among the BVH's primitives
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return bvh.hitNode(0, ray, tMin, tMax)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(index int, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	node := &bvh.nodes[index]
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.isLeaf() {
		return bvh.primitives[node.Primitive].Hit(ray, tMin, tMax)
	}

	// Both children are always tested; either may hold the closer hit
	leftHit, hitLeft := bvh.hitNode(node.Left, ray, tMin, tMax)
	rightHit, hitRight := bvh.hitNode(node.Right, ray, tMin, tMax)

	switch {
	case hitLeft && hitRight:
		if leftHit.T < rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case hitLeft:
		return leftHit, true
	case hitRight:
		return rightHit, true
	default:
		return nil, false
	}
}

// BoundingBox returns the box enclosing every primitive in the tree
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.nodes[0].BoundingBox
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	return bvh.stats
}

// Len returns the number of primitives in the tree
func (bvh *BVH) Len() int {
	return len(bvh.primitives)
}
