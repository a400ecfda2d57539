// Package solar computes, for every glazed window of a building model, the
// remote obstruction factor: the fraction of solar irradiance reaching the
// window unblocked by the surrounding geometry, sampled across the
// representative day's sun positions.
package solar

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/avillena/solshade/model"
	"github.com/avillena/solshade/trace"
	"github.com/avillena/solshade/types"
)

// Occluder is a cached, pre-transformed candidate blocker: a wall, a
// freestanding shade or a synthetic reveal panel.
//
// The id lets the engine exclude the wall hosting the window under test;
// LinkedTo identifies the window a reveal panel was generated for, so
// panels of other windows can be excluded too. Normal and TransInv cache
// what the ray/polygon test needs; a nil TransInv marks unplaced geometry
// that can never be hit.
type Occluder struct {
	ID       uuid.UUID
	LinkedTo *uuid.UUID
	Normal   types.Vec3
	TransInv *types.Transform
	Polygon  []types.Vec2

	box trace.AABB
}

func (o *Occluder) String() string {
	return fmt.Sprintf("Occluder (id: %s, linked_to: %v)", o.ID, o.LinkedTo)
}

// The global AABB of the occluder.
func (o *Occluder) AABB() trace.AABB {
	return o.box
}

// Intersects tests the ray against the occluder, box first and polygon
// after.
func (o *Occluder) Intersects(ray trace.Ray) (float32, bool) {
	if _, hit := o.box.Intersects(ray); !hit {
		return 0, false
	}
	return ray.IntersectsPoly(o.Polygon, o.TransInv, o.Normal)
}

// newOccluder snapshots a placed geometry as a candidate blocker.
func newOccluder(id uuid.UUID, linkedTo *uuid.UUID, g *model.WallGeometry) *Occluder {
	var transInv *types.Transform
	if tr := g.ToGlobalTransform(); tr != nil {
		inv := tr.Inverse()
		transInv = &inv
	}
	return &Occluder{
		ID:       id,
		LinkedTo: linkedTo,
		Normal:   model.PolygonNormal(g.Polygon),
		TransInv: transInv,
		Polygon:  g.Polygon,
		box:      geometryAABB(g),
	}
}

// geometryAABB computes the global AABB of a placed geometry; unplaced
// geometry keeps the default (empty) box.
func geometryAABB(g *model.WallGeometry) trace.AABB {
	tr := g.ToGlobalTransform()
	if tr == nil {
		return trace.DefaultAABB()
	}
	box := trace.DefaultAABB()
	for _, p := range g.Polygon {
		pt := tr.ApplyPoint(p.Vec3(0))
		box.Min = types.MinVec3(box.Min, pt)
		box.Max = types.MaxVec3(box.Max, pt)
	}
	return box
}

// CollectOccluders lists the candidate blockers of a model: every wall
// facing exterior air or an adiabatic boundary, every freestanding shade
// and the reveal panels of every recessed window. Reveal panels keep a
// back-reference to the window that generated them.
func CollectOccluders(m *model.Model) []*Occluder {
	var occluders []*Occluder
	for _, w := range m.Walls {
		if w.Bounds != model.Adiabatic && w.Bounds != model.Exterior {
			continue
		}
		occluders = append(occluders, newOccluder(w.ID, nil, &w.Geometry))
	}
	for _, s := range m.Shades {
		occluders = append(occluders, newOccluder(s.ID, nil, &s.Geometry))
	}
	for _, sb := range m.WindowSetbackShades() {
		winID := sb.Window
		occluders = append(occluders, newOccluder(sb.Shade.ID, &winID, &sb.Shade.Geometry))
	}
	return occluders
}
