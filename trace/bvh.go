package trace

import (
	"time"

	"github.com/avillena/solshade/log"
)

// Axis selects one of the three coordinate axes.
type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

const noChild int32 = -1

// The Bounded interface is implemented by elements that can report the AABB
// enclosing them.
type Bounded interface {
	AABB() AABB
}

// The Intersectable interface is implemented by elements that can be tested
// for intersection against a ray.
type Intersectable interface {
	Intersects(ray Ray) (float32, bool)
}

// The BoundedVolume interface is implemented by all elements that can be
// partitioned and queried by the BVH.
type BoundedVolume interface {
	Bounded
	Intersectable
}

// Node is a BVH tree node. Terminal nodes hold the elements partitioned
// into them; intermediate nodes reference two children in the node arena.
// Every node's box contains the boxes of everything below it.
type Node[T BoundedVolume] struct {
	aabb        AABB
	left, right int32
	elements    []T
}

// The box enclosing the node contents.
func (n *Node[T]) AABB() AABB {
	return n.aabb
}

// Report whether the node is terminal.
func (n *Node[T]) IsLeaf() bool {
	return n.left == noChild
}

// The elements stored on a terminal node; nil for intermediate nodes.
func (n *Node[T]) Elements() []T {
	return n.elements
}

// BVH partitions a set of bounded volumes by object using nested AABBs, to
// accelerate "does this ray hit anything" queries. It is built once and
// never mutated afterwards.
//
// Nodes are stored in a contiguous arena and reference their children by
// index, so construction needs no recursion and tree depth cannot overflow
// the stack on pathological inputs.
type BVH[T BoundedVolume] struct {
	nodes        []Node[T]
	maxLeafItems int
}

// Construct a BVH from a set of bounded volumes. maxLeafItems caps the
// number of elements a terminal node may hold; any worklist above the cap
// is split at the center of its box along the largest axis.
func BuildBVH[T BoundedVolume](elements []T, maxLeafItems int) *BVH[T] {
	if maxLeafItems < 1 {
		maxLeafItems = 1
	}
	b := &BVH[T]{maxLeafItems: maxLeafItems}
	if len(elements) == 0 {
		return b
	}

	start := time.Now()
	b.nodes = append(b.nodes, Node[T]{
		aabb:     JoinAABBs(elements),
		left:     noChild,
		right:    noChild,
		elements: elements,
	})

	// Iteratively split oversized terminal nodes
	pending := []int32{0}
	for len(pending) > 0 {
		index := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if len(b.nodes[index].elements) <= b.maxLeafItems {
			continue
		}

		left, right := partitionByCenter(b.nodes[index].elements, b.nodes[index].aabb)
		if len(left) == 0 || len(right) == 0 {
			// All centers fall on one side of the splitting plane; keep the
			// oversized leaf instead of looping without progress.
			continue
		}

		leftIndex := int32(len(b.nodes))
		b.nodes = append(b.nodes, Node[T]{
			aabb:     JoinAABBs(left),
			left:     noChild,
			right:    noChild,
			elements: left,
		})
		rightIndex := int32(len(b.nodes))
		b.nodes = append(b.nodes, Node[T]{
			aabb:     JoinAABBs(right),
			left:     noChild,
			right:    noChild,
			elements: right,
		})

		// The split node keeps the box computed from its full worklist; the
		// two sides partition that list exactly so the retained box stays
		// tight over everything below it.
		b.nodes[index].left = leftIndex
		b.nodes[index].right = rightIndex
		b.nodes[index].elements = nil

		pending = append(pending, rightIndex, leftIndex)
	}

	logger.Debugf("BVH build time: %d us, %d elements, %d nodes",
		time.Since(start).Microseconds(), len(elements), len(b.nodes))
	return b
}

var logger = log.New("trace")

// partitionByCenter splits a worklist in two using the center of the
// enclosing box on its largest axis (ties broken in x,y,z order) as the
// splitting plane. An element goes left iff its own box center is strictly
// below the plane.
func partitionByCenter[T BoundedVolume](elements []T, box AABB) (left, right []T) {
	side := box.Max.Sub(box.Min)
	axis := XAxis
	if side[1] > side[0] || side[2] > side[0] {
		if side[1] >= side[2] {
			axis = YAxis
		} else {
			axis = ZAxis
		}
	}

	splitPoint := box.Center()[axis]
	for _, e := range elements {
		if e.AABB().Center()[axis] < splitPoint {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}
	return left, right
}

// Root of the tree, or nil for a BVH built from no elements.
func (b *BVH[T]) Root() *Node[T] {
	if len(b.nodes) == 0 {
		return nil
	}
	return &b.nodes[0]
}

// Left child of an intermediate node.
func (b *BVH[T]) Left(n *Node[T]) *Node[T] {
	if n.left == noChild {
		return nil
	}
	return &b.nodes[n.left]
}

// Right child of an intermediate node.
func (b *BVH[T]) Right(n *Node[T]) *Node[T] {
	if n.right == noChild {
		return nil
	}
	return &b.nodes[n.right]
}

// IterWithRay returns a lazy preorder iterator over the nodes whose box the
// ray hits. Subtrees whose box the ray misses are pruned wholesale. Both
// intermediate and terminal nodes are produced; callers filter for leaves
// when they want terminal element groups.
//
// The iterator is single pass and not restartable.
func (b *BVH[T]) IterWithRay(ray Ray) *RayIter[T] {
	it := &RayIter[T]{bvh: b, ray: ray}
	if len(b.nodes) > 0 {
		it.stack = append(it.stack, 0)
	}
	return it
}

// RayIter walks the tree depth first over an explicit stack.
type RayIter[T BoundedVolume] struct {
	bvh   *BVH[T]
	ray   Ray
	stack []int32
}

// Next yields the next node hit by the ray, left branch first.
func (it *RayIter[T]) Next() (*Node[T], bool) {
	for len(it.stack) > 0 {
		index := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		node := &it.bvh.nodes[index]
		if _, hit := node.aabb.Intersects(it.ray); !hit {
			continue
		}
		if !node.IsLeaf() {
			// Push right first so the left branch is visited next
			it.stack = append(it.stack, node.right, node.left)
		}
		return node, true
	}
	return nil, false
}

// Intersects reports whether the ray hits any element in the tree, along
// with the hit factor t of the first element found in preorder leaf order.
//
// This is an early-exit existence test, not a nearest hit search: use it
// only to answer "is anything in the way".
func (b *BVH[T]) Intersects(ray Ray) (float32, bool) {
	it := b.IterWithRay(ray)
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		if !node.IsLeaf() {
			continue
		}
		for _, e := range node.elements {
			if t, hit := e.Intersects(ray); hit {
				return t, true
			}
		}
	}
	return 0, false
}
