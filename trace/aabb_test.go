package trace

import (
	"testing"

	"github.com/avillena/solshade/types"
)

func TestJoin(t *testing.T) {
	a := NewAABB(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	b := NewAABB(types.XYZ(-1, 0.5, 0), types.XYZ(0.5, 2, 3))

	want := NewAABB(types.XYZ(-1, 0, 0), types.XYZ(1, 2, 3))
	if got := a.Join(b); got != want {
		t.Fatalf("expected %s; got %s", want, got)
	}
	if got := b.Join(a); got != want {
		t.Fatalf("expected join to be commutative; got %s", got)
	}

	// The default box is the join identity
	if got := DefaultAABB().Join(a); got != a {
		t.Fatalf("expected %s; got %s", a, got)
	}
}

func TestJoinAABBs(t *testing.T) {
	boxes := []AABB{
		NewAABB(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1)),
		NewAABB(types.XYZ(2, -1, 0), types.XYZ(3, 0, 1)),
	}
	want := NewAABB(types.XYZ(0, -1, 0), types.XYZ(3, 1, 1))
	if got := JoinAABBs(boxes); got != want {
		t.Fatalf("expected %s; got %s", want, got)
	}
	if got := JoinAABBs([]AABB{}); got != DefaultAABB() {
		t.Fatalf("expected the default box for no elements; got %s", got)
	}
}

func TestCenter(t *testing.T) {
	a := NewAABB(types.XYZ(0, 0, 0), types.XYZ(2, 4, 6))
	if got := a.Center(); got != (types.Vec3{1, 2, 3}) {
		t.Fatalf("expected [1 2 3]; got %v", got)
	}
}

func TestAABBIntersects(t *testing.T) {
	box := NewAABB(types.XYZ(1, 1, 1), types.XYZ(2, 2, 2))

	// Ray pointing at the box
	tmin, hit := box.Intersects(NewRay(types.XYZ(1.5, 1.5, 0), types.XYZ(0, 0, 1)))
	if !hit {
		t.Fatal("expected ray to hit the box")
	}
	if tmin != 1 {
		t.Fatalf("expected entry distance 1; got %f", tmin)
	}

	// Ray pointing away
	if _, hit = box.Intersects(NewRay(types.XYZ(1.5, 1.5, 0), types.XYZ(0, 0, -1))); hit {
		t.Fatal("expected ray pointing away to miss the box")
	}

	// Ray next to the box
	if _, hit = box.Intersects(NewRay(types.XYZ(5, 1.5, 0), types.XYZ(0, 0, 1))); hit {
		t.Fatal("expected offset ray to miss the box")
	}

	// Origin inside the box still counts as a hit
	if _, hit = box.Intersects(NewRay(types.XYZ(1.5, 1.5, 1.5), types.XYZ(0, 0, 1))); !hit {
		t.Fatal("expected ray from inside the box to hit")
	}
}

func TestAABBIntersectsDegenerate(t *testing.T) {
	// Box with zero extent on z, like a horizontal polygon's
	box := NewAABB(types.XYZ(1, 1, 1), types.XYZ(2, 2, 1))

	// Parallel ray off the box plane
	if _, hit := box.Intersects(NewRay(types.XYZ(0, 1.5, 2), types.XYZ(1, 0, 0))); hit {
		t.Fatal("expected parallel ray off the plane to miss")
	}

	// Parallel ray running inside the box plane
	if _, hit := box.Intersects(NewRay(types.XYZ(0, 1.5, 1), types.XYZ(1, 0, 0))); !hit {
		t.Fatal("expected parallel ray inside the plane to hit")
	}

	// Ray crossing the plane
	if _, hit := box.Intersects(NewRay(types.XYZ(1.5, 1.5, 0), types.XYZ(0, 0, 1))); !hit {
		t.Fatal("expected crossing ray to hit")
	}
}
