package trace

import "github.com/avillena/solshade/types"

// Rays whose direction is closer than this to the polygon plane are treated
// as parallel and never intersect.
const parallelEpsilon = 1e-5

// Ray with an origin and a normalized direction.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3
}

// Create a new ray. The direction is normalized.
func NewRay(origin, dir types.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// IntersectsPoly calculates the intersection of the ray with a planar 2D
// polygon placed in space by an isometry, and reports the factor t along the
// ray direction at which the hit occurs.
//
// polygon lives on the local XY plane; toLocal is the inverse placement
// matrix (global to polygon coordinates) and normal the plane normal in
// local coordinates. A nil toLocal marks unplaced geometry which can never
// be hit.
//
// Since the placement is an isometry, the returned t measures the same
// parametric distance along the original, untransformed ray.
func (r Ray) IntersectsPoly(polygon []types.Vec2, toLocal *types.Transform, normal types.Vec3) (float32, bool) {
	if toLocal == nil {
		return 0, false
	}

	// Transform the ray into the polygon coordinate space. The direction is
	// a free vector and is only rotated.
	invRayO := toLocal.ApplyPoint(r.Origin)
	invRayD := toLocal.ApplyVector(r.Dir)

	// Ray parallel to the polygon plane
	denominator := normal.Dot(invRayD)
	if abs32(denominator) < parallelEpsilon {
		return 0, false
	}

	// Intersection of the transformed ray with the local XY plane
	polyOToRay := polygon[0].Vec3(0).Sub(invRayO)
	t := normal.Dot(polyOToRay) / denominator

	// Only positive t counts: it is a ray, not a line
	if t < 0 {
		return 0, false
	}

	hit := invRayO.Add(invRayD.Mul(t))
	if !pointInPoly(hit.Vec2(), polygon) {
		return 0, false
	}
	return t, true
}

// pointInPoly runs a crossing number test over the polygon edges, wrapping
// from the last vertex back to the first. For each edge straddling the
// horizontal line through pt, a sign expression decides whether the edge
// crosses to the right of the point without computing the intersection or
// dividing. The >= on one endpoint fixes a half-open convention so shared
// vertices are never counted twice; the test handles convex and simple
// non-convex polygons alike.
// See http://erich.realtimerendering.com/ptinpoly/
func pointInPoly(pt types.Vec2, poly []types.Vec2) bool {
	x := pt[0]
	y := pt[1]
	inside := false

	// Start with the edge closing the polygon
	vj := poly[len(poly)-1]
	y0 := vj[1] >= y
	for _, vi := range poly {
		y1 := vi[1] >= y
		if y0 != y1 && (((vi[1]-y)*(vj[0]-vi[0]) >= (vi[0]-x)*(vj[1]-vi[1])) == y1) {
			inside = !inside
		}
		y0 = y1
		vj = vi
	}

	return inside
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
