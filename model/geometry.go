package model

import (
	"math"

	"github.com/avillena/solshade/types"
)

// WallGeometry places an ordered local 2D polygon in space. Tilt is
// measured in degrees from the horizontal-up position and azimuth from
// geographic south (S=0, E=+90, W=-90). A nil position marks an incomplete
// geometric definition: the element cannot be placed, hit tested or used as
// an occluder.
type WallGeometry struct {
	Tilt     float32      `json:"tilt"`
	Azimuth  float32      `json:"azimuth"`
	Position *types.Vec3  `json:"position,omitempty"`
	Polygon  []types.Vec2 `json:"polygon"`
}

func radians(deg float32) float32 {
	return deg * math.Pi / 180.0
}

// ToGlobalTransform builds the isometry mapping polygon local coordinates
// to global ones: translation to the placed position after rotating the
// azimuth around Z and the tilt around X. Returns nil for unplaced
// geometry.
func (g *WallGeometry) ToGlobalTransform() *types.Transform {
	if g.Position == nil {
		return nil
	}
	rot := types.RotZ(radians(g.Azimuth)).Mul(types.RotX(radians(g.Tilt)))
	t := types.NewTransform(rot, *g.Position)
	return &t
}

// ToPolygonTransform builds the 2D isometry mapping wall local coordinates
// to the internal polygon frame: the X axis is rotated onto the first
// polygon edge and the origin translated to its first vertex. Returns nil
// for polygons with fewer than 3 vertices.
func (g *WallGeometry) ToPolygonTransform() *types.Transform2 {
	if len(g.Polygon) <= 2 {
		return nil
	}
	t := types.NewTransform2(g.Polygon[1].Sub(g.Polygon[0]), g.Polygon[0])
	return &t
}

// Normal of the geometry in global coordinates.
func (g *WallGeometry) Normal() types.Vec3 {
	rot := types.RotZ(radians(g.Azimuth)).Mul(types.RotX(radians(g.Tilt)))
	return rot.MulVec(PolygonNormal(g.Polygon))
}

// Gross surface of the element, m2.
func (g *WallGeometry) Area() float32 {
	return PolygonArea(g.Polygon)
}

// Perimeter of the element, m.
func (g *WallGeometry) Perimeter() float32 {
	return PolygonPerimeter(g.Polygon)
}

// PolygonNormal computes the unit normal of a planar polygon in its own
// local coordinates (+Z for counterclockwise winding). Polygons with fewer
// than 3 vertices have no normal and yield the zero vector.
func PolygonNormal(poly []types.Vec2) types.Vec3 {
	if len(poly) < 3 {
		return types.Vec3{}
	}
	v0 := poly[1].Sub(poly[0])
	v1 := poly[2].Sub(poly[0])
	return v0.Vec3(0).Cross(v1.Vec3(0)).Normalize()
}

// PolygonArea computes the gross area enclosed by the polygon vertices, m2.
func PolygonArea(poly []types.Vec2) float32 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var area float32
	for i, v := range poly {
		w := poly[(i+1)%n]
		area += v[0]*w[1] - v[1]*w[0]
	}
	return abs32(0.5 * area)
}

// PolygonPerimeter computes the polygon perimeter, m.
func PolygonPerimeter(poly []types.Vec2) float32 {
	n := len(poly)
	if n < 2 {
		return 0
	}
	var per float32
	for i, v := range poly {
		per += v.Sub(poly[(i+1)%n]).Len()
	}
	return per
}
