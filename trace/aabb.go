// Package trace implements the geometric occlusion core: axis-aligned
// bounding boxes, ray/polygon intersection tests and a bounding volume
// hierarchy used to prune candidate blockers when testing sun visibility.
package trace

import (
	"fmt"
	"math"

	"github.com/avillena/solshade/types"
)

// AABB is an axis aligned bounding box defined by its extreme points.
// A non-default box keeps Min <= Max on every axis.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// Create an AABB from its extreme points.
func NewAABB(min, max types.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// The default AABB is the identity for Join: +Inf mins and -Inf maxes.
func DefaultAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: types.Vec3{inf, inf, inf},
		Max: types.Vec3{-inf, -inf, -inf},
	}
}

// Calculate the AABB enclosing this box and another one.
func (a AABB) Join(b AABB) AABB {
	return AABB{
		Min: types.MinVec3(a.Min, b.Min),
		Max: types.MaxVec3(a.Max, b.Max),
	}
}

// Midpoint of the box.
func (a AABB) Center() types.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB) String() string {
	return fmt.Sprintf("AABB (min: [%g, %g, %g], max: [%g, %g, %g])",
		a.Min[0], a.Min[1], a.Min[2], a.Max[0], a.Max[1], a.Max[2])
}

// AABB implements Bounded so plain boxes can be indexed by a BVH.
func (a AABB) AABB() AABB {
	return a
}

// JoinAABBs folds Join over the boxes of every element, seeded with the
// default box.
func JoinAABBs[T Bounded](elements []T) AABB {
	out := DefaultAABB()
	for _, e := range elements {
		out = out.Join(e.AABB())
	}
	return out
}

// Intersects runs the slab method against the ray and reports the distance
// to the first slab entry. The returned t may be negative when the ray
// origin lies inside the box.
//
// Division by a zero direction component yields +/-Inf slab distances,
// which reject or accept correctly on their own. When the ray origin also
// sits exactly on a bound of such an axis the 0*Inf products become NaN;
// min32/max32 drop NaN operands, so that axis imposes no constraint and
// boxes degenerate on a parallel axis still accept rays running inside
// their plane.
// See https://gdbooks.gitbooks.io/3dcollisions/content/Chapter3/raycast_aabb.html
func (a AABB) Intersects(ray Ray) (float32, bool) {
	idx := 1.0 / ray.Dir[0]
	idy := 1.0 / ray.Dir[1]
	idz := 1.0 / ray.Dir[2]

	t1 := (a.Min[0] - ray.Origin[0]) * idx
	t2 := (a.Max[0] - ray.Origin[0]) * idx
	t3 := (a.Min[1] - ray.Origin[1]) * idy
	t4 := (a.Max[1] - ray.Origin[1]) * idy
	t5 := (a.Min[2] - ray.Origin[2]) * idz
	t6 := (a.Max[2] - ray.Origin[2]) * idz

	tmin := max32(max32(min32(t1, t2), min32(t3, t4)), min32(t5, t6))
	tmax := min32(min32(max32(t1, t2), max32(t3, t4)), max32(t5, t6))

	// The line intersects but the box is behind the ray
	if tmax < 0 {
		return 0, false
	}
	// The ray misses the box
	if tmin > tmax {
		return 0, false
	}
	return tmin, true
}

// min32/max32 drop a NaN operand and keep the other value. math.Min/Max on
// float64 would instead propagate the NaN and break the slab test for
// degenerate boxes.
func min32(a, b float32) float32 {
	if a < b || b != b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b || b != b {
		return a
	}
	return b
}
