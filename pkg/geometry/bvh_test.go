package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// countingPrimitive records how often it was intersected
type countingPrimitive struct {
	*Sphere
	calls *int
}

func (c countingPrimitive) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	*c.calls++
	return c.Sphere.Hit(ray, tMin, tMax)
}

func randomSpheres(random *rand.Rand, n int) []core.BoundedPrimitive {
	spheres := make([]core.BoundedPrimitive, n)
	for i := range spheres {
		center := core.NewVec3(
			random.Float64()*20-10,
			random.Float64()*20-10,
			random.Float64()*20-10,
		)
		spheres[i] = NewSphere(center, 0.1+random.Float64(), core.MaterialID(i))
	}
	return spheres
}

func randomRay(random *rand.Rand) core.Ray {
	origin := core.NewVec3(
		random.Float64()*30-15,
		random.Float64()*30-15,
		random.Float64()*30-15,
	)
	// Aim roughly through the scene so that a fair share of rays hit something
	target := core.NewVec3(
		random.Float64()*10-5,
		random.Float64()*10-5,
		random.Float64()*10-5,
	)
	return core.NewRay(origin, target.Subtract(origin).Multiply(0.5+random.Float64()))
}

func linearHit(primitives []core.BoundedPrimitive, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax
	for _, p := range primitives {
		if hit, ok := p.Hit(ray, tMin, closestSoFar); ok {
			closest, closestSoFar = hit, hit.T
		}
	}
	return closest, closest != nil
}

// TestBVH_MatchesLinearScan checks the BVH against brute force over many random scenes and rays
func TestBVH_MatchesLinearScan(t *testing.T) {
	random := rand.New(rand.NewSource(1234))
	opts := cmpopts.EquateApprox(0, 1e-9)

	for _, n := range []int{1, 2, 3, 7, 16, 33, 100, 257} {
		primitives := randomSpheres(random, n)
		reference := append([]core.BoundedPrimitive(nil), primitives...)
		bvh := NewBVH(primitives, core.NewSeededSampler(int64(n)))

		hits := 0
		for i := 0; i < 2000; i++ {
			ray := randomRay(random)
			want, wantHit := linearHit(reference, ray, 0.0001, 1000)
			got, gotHit := bvh.Hit(ray, 0.0001, 1000)

			if wantHit != gotHit {
				t.Fatalf("n=%d ray %v: linear hit=%t, bvh hit=%t", n, ray, wantHit, gotHit)
			}
			if !wantHit {
				continue
			}
			hits++
			if diff := cmp.Diff(want.T, got.T, opts); diff != "" {
				t.Fatalf("n=%d ray %v: nearest t mismatch (-linear +bvh):\n%s", n, ray, diff)
			}
			if diff := cmp.Diff(want.Point, got.Point, opts); diff != "" {
				t.Fatalf("n=%d ray %v: hit point mismatch (-linear +bvh):\n%s", n, ray, diff)
			}
		}

		if hits == 0 {
			t.Errorf("n=%d: no ray hit anything, test is not exercising the tree", n)
		}
	}
}

func TestBVH_Structure(t *testing.T) {
	random := rand.New(rand.NewSource(9))

	for _, n := range []int{1, 2, 5, 8, 9, 64, 100} {
		bvh := NewBVH(randomSpheres(random, n), core.NewSeededSampler(1))
		stats := bvh.Stats()

		if stats.LeafNodes != n {
			t.Errorf("n=%d: expected %d leaves, got %d", n, n, stats.LeafNodes)
		}
		if stats.TotalNodes != 2*n-1 {
			t.Errorf("n=%d: expected %d nodes, got %d", n, 2*n-1, stats.TotalNodes)
		}
		// Midpoint splits keep the tree balanced
		expectedDepth := int(math.Ceil(math.Log2(float64(n))))
		if stats.MaxDepth != expectedDepth {
			t.Errorf("n=%d: expected depth %d, got %d", n, expectedDepth, stats.MaxDepth)
		}
		if bvh.Len() != n {
			t.Errorf("n=%d: expected Len %d, got %d", n, n, bvh.Len())
		}
	}
}

func TestBVH_NodeBoxesEncloseChildren(t *testing.T) {
	random := rand.New(rand.NewSource(21))
	bvh := NewBVH(randomSpheres(random, 50), core.NewSeededSampler(2))

	for i, node := range bvh.nodes {
		if !node.BoundingBox.IsValid() {
			t.Fatalf("node %d has invalid box %v", i, node.BoundingBox)
		}
		if node.isLeaf() {
			if node.BoundingBox != bvh.primitives[node.Primitive].BoundingBox() {
				t.Errorf("leaf %d box differs from its primitive's box", i)
			}
			continue
		}
		union := bvh.nodes[node.Left].BoundingBox.Union(bvh.nodes[node.Right].BoundingBox)
		if node.BoundingBox != union {
			t.Errorf("node %d box %v is not the union of its children %v", i, node.BoundingBox, union)
		}
	}
}

func TestBVH_PrunesMissedSubtrees(t *testing.T) {
	calls := 0
	var primitives []core.BoundedPrimitive
	for i := 0; i < 32; i++ {
		sphere := NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1, core.MaterialID(i))
		primitives = append(primitives, countingPrimitive{Sphere: sphere, calls: &calls})
	}
	bvh := NewBVH(primitives, core.NewSeededSampler(3))

	// Straight down onto the first sphere only
	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0))
	hit, isHit := bvh.Hit(ray, 0.0001, 1000)
	if !isHit || hit.Material != 0 {
		t.Fatalf("Expected to hit sphere 0, got %v", hit)
	}
	if calls >= len(primitives) {
		t.Errorf("Expected pruning to skip most primitives, got %d primitive tests", calls)
	}
}

func TestBVH_BoundingBox(t *testing.T) {
	primitives := []core.BoundedPrimitive{
		NewSphere(core.NewVec3(-2, 0, 0), 1, 0),
		NewSphere(core.NewVec3(3, 1, 0), 0.5, 1),
	}
	bvh := NewBVH(primitives, core.NewSeededSampler(4))

	expected := core.NewAABB(core.NewVec3(-3, -1, -1), core.NewVec3(3.5, 1.5, 1))
	if box := bvh.BoundingBox(); box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestNewBVH_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when building a BVH over zero primitives")
		}
	}()
	NewBVH(nil, core.NewSeededSampler(0))
}

// invertedBoxPrimitive reports a bounding box with Min > Max on the X axis
type invertedBoxPrimitive struct{}

func (invertedBoxPrimitive) Hit(core.Ray, float64, float64) (*core.HitRecord, bool) {
	return nil, false
}

func (invertedBoxPrimitive) BoundingBox() core.AABB {
	return core.NewAABB(core.NewVec3(1, 0, 0), core.NewVec3(-1, 1, 1))
}

func TestNewBVH_InvertedBoxPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when a primitive reports an inverted bounding box")
		}
	}()
	primitives := []core.BoundedPrimitive{
		NewSphere(core.NewVec3(0, 0, 0), 1, 0),
		invertedBoxPrimitive{},
	}
	NewBVH(primitives, core.NewSeededSampler(0))
}
