package types

import (
	"math"
	"testing"
)

func TestVecConversions(t *testing.T) {
	v2 := XY(1, 2)
	v3 := v2.Vec3(3)
	if v3 != (Vec3{1, 2, 3}) {
		t.Fatalf("expected [1 2 3]; got %v", v3)
	}
	if v3.Vec2() != v2 {
		t.Fatalf("expected [1 2]; got %v", v3.Vec2())
	}
}

func TestVec3Ops(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, 5, 6)

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Fatalf("expected [5 7 9]; got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Fatalf("expected [3 3 3]; got %v", got)
	}
	if got := a.Mul(2); got != (Vec3{2, 4, 6}) {
		t.Fatalf("expected [2 4 6]; got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Fatalf("expected dot 32; got %f", got)
	}
	if got := XYZ(1, 0, 0).Cross(XYZ(0, 1, 0)); got != (Vec3{0, 0, 1}) {
		t.Fatalf("expected x cross y = z; got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := XYZ(3, 0, 4).Normalize()
	if math.Abs(float64(v.Len()-1)) > 1e-6 {
		t.Fatalf("expected unit length; got %f", v.Len())
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("expected zero vector to normalize to itself; got %v", got)
	}
}

func TestMinMaxVec3(t *testing.T) {
	a := XYZ(1, 5, 3)
	b := XYZ(2, 4, 3)
	if got := MinVec3(a, b); got != (Vec3{1, 4, 3}) {
		t.Fatalf("expected [1 4 3]; got %v", got)
	}
	if got := MaxVec3(a, b); got != (Vec3{2, 5, 3}) {
		t.Fatalf("expected [2 5 3]; got %v", got)
	}
}
