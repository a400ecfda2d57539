// Package model holds the building description consumed by the shading
// engine: envelope walls, windows, freestanding shades and the geometric
// placement of each of them.
package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/avillena/solshade/types"
)

// BoundaryType tags what lies on the other side of an opaque element.
type BoundaryType string

const (
	// Exterior air
	Exterior BoundaryType = "EXTERIOR"
	// Another conditioned space
	Interior BoundaryType = "INTERIOR"
	// No heat flow boundary (e.g. party walls)
	Adiabatic BoundaryType = "ADIABATIC"
	// In contact with the ground
	Underground BoundaryType = "GROUND"
)

// Tilt classes of an opaque element.
type Tilt uint8

const (
	// Downward facing elements, floors (tilt around 180 deg)
	TiltBottom Tilt = iota
	// Upward facing elements, roofs (tilt around 0 deg)
	TiltTop
	// Vertical elements, walls
	TiltSide
)

// Classify a tilt angle in degrees.
func TiltFromAngle(tilt float32) Tilt {
	tilt = normalizeAngle(tilt, 0, 360)
	switch {
	case tilt <= 60:
		return TiltTop
	case tilt < 120:
		return TiltSide
	case tilt < 240:
		return TiltBottom
	case tilt < 300:
		return TiltSide
	default:
		return TiltTop
	}
}

// Orientation of an element by cardinal point, or horizontal.
type Orientation uint8

const (
	North Orientation = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "Horiz."
	}
}

// OrientationFromAzimuth maps an azimuth in the UNE-EN ISO 52016-1
// convention (S=0, E=+90, W=-90) to its cardinal range.
func OrientationFromAzimuth(azimuth float32) Orientation {
	azimuth = normalizeAngle(azimuth, 0, 360)
	switch {
	case azimuth < 18.0:
		return South
	case azimuth < 69.0:
		return SouthEast
	case azimuth < 120.0:
		return East
	case azimuth < 157.5:
		return NorthEast
	case azimuth < 202.5:
		return North
	case azimuth < 240.0:
		return NorthWest
	case azimuth < 291.0:
		return West
	case azimuth < 342.0:
		return SouthWest
	default:
		return South
	}
}

// Space groups walls; its multiplier scales areas in reports.
type Space struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	// Useful floor area, m2
	Area       float32 `json:"area"`
	Multiplier float32 `json:"multiplier"`
}

// Wall is an opaque envelope element with a placed planar polygon.
type Wall struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Bounds   BoundaryType `json:"bounds"`
	Space    uuid.UUID    `json:"space"`
	Geometry WallGeometry `json:"geometry"`
}

// Orientation of the wall, horizontal for floors and roofs.
func (w *Wall) Orientation() Orientation {
	if TiltFromAngle(w.Geometry.Tilt) != TiltSide {
		return Horizontal
	}
	return OrientationFromAzimuth(w.Geometry.Azimuth)
}

// Shade is a freestanding shading surface.
type Shade struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Geometry WallGeometry `json:"geometry"`
}

// WinCons is a window construction.
type WinCons struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	// Solar factor with movable shading devices active
	GglShWi float32 `json:"g_glshwi"`
	// Frame fraction [0.0, 1.0]
	FF float32 `json:"f_f"`
}

// Window is a glazed opening hosted on a wall. Its position is expressed in
// the wall local frame; Setback is the recess depth of the glass behind the
// wall plane.
type Window struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Wall uuid.UUID `json:"wall"`
	Cons uuid.UUID `json:"cons"`
	// Remote obstruction factor [0.0, 1.0], computed by the shading engine
	FShobst  float32        `json:"f_shobst"`
	Geometry WindowGeometry `json:"geometry"`
}

// Surface of the window, m2.
func (w *Window) Area() float32 {
	return w.Geometry.Width * w.Geometry.Height
}

// WindowGeometry places a rectangular opening on its host wall.
type WindowGeometry struct {
	// Position of the lower left corner in wall local coordinates. A nil
	// position marks an incomplete geometric definition.
	Position *types.Vec2 `json:"position,omitempty"`
	Width    float32     `json:"width"`
	Height   float32     `json:"height"`
	Setback  float32     `json:"setback"`
}

// SetbackShade is a synthetic reveal panel generated for a recessed window.
type SetbackShade struct {
	// Window the panel belongs to
	Window uuid.UUID
	Shade  Shade
}

// ShadesForSetback builds the four reveal panels (overhang, left fin, right
// fin and sill) for a recessed window hosted on a wall with the given
// geometry. Windows without setback or without a complete geometric
// definition generate no panels.
func (w *Window) ShadesForSetback(wallGeom *WallGeometry) []SetbackShade {
	wg := &w.Geometry
	if abs32(wg.Setback) < 0.01 {
		return nil
	}
	if wg.Position == nil {
		return nil
	}
	wall2world := wallGeom.ToGlobalTransform()
	if wall2world == nil {
		return nil
	}

	wpos := *wg.Position
	pos := func(x, y float32) *types.Vec3 {
		p := wall2world.ApplyPoint(types.XYZ(x, y, 0))
		return &p
	}

	overhang := Shade{
		ID:   derivedID(w.ID, "top_setback"),
		Name: fmt.Sprintf("%s_top_setback", w.Name),
		Geometry: WallGeometry{
			// 90 deg over the wall tilt makes the panel perpendicular to
			// the opening
			Tilt:     wallGeom.Tilt + 90.0,
			Azimuth:  wallGeom.Azimuth,
			Position: pos(wpos[0], wpos[1]+wg.Height),
			Polygon: []types.Vec2{
				{0.0, 0.0},
				{0.0, -wg.Setback},
				{wg.Width, -wg.Setback},
				{wg.Width, 0.0},
			},
		},
	}

	leftFin := Shade{
		ID:   derivedID(w.ID, "left_setback"),
		Name: fmt.Sprintf("%s_left_setback", w.Name),
		Geometry: WallGeometry{
			Tilt:     wallGeom.Tilt,
			Azimuth:  wallGeom.Azimuth + 90.0,
			Position: pos(wpos[0], wpos[1]+wg.Height),
			Polygon: []types.Vec2{
				{0.0, 0.0},
				{0.0, -wg.Height},
				{wg.Setback, -wg.Height},
				{wg.Setback, 0.0},
			},
		},
	}

	rightFin := Shade{
		ID:   derivedID(w.ID, "right_setback"),
		Name: fmt.Sprintf("%s_right_setback", w.Name),
		Geometry: WallGeometry{
			Tilt:     wallGeom.Tilt,
			Azimuth:  wallGeom.Azimuth - 90.0,
			Position: pos(wpos[0]+wg.Width, wpos[1]+wg.Height),
			Polygon: []types.Vec2{
				{0.0, 0.0},
				{-wg.Setback, 0.0},
				{-wg.Setback, -wg.Height},
				{0.0, -wg.Height},
			},
		},
	}

	sill := Shade{
		ID:   derivedID(w.ID, "sill_setback"),
		Name: fmt.Sprintf("%s_sill_setback", w.Name),
		Geometry: WallGeometry{
			Tilt:     wallGeom.Tilt - 90.0,
			Azimuth:  wallGeom.Azimuth,
			Position: pos(wpos[0], wpos[1]),
			Polygon: []types.Vec2{
				{0.0, 0.0},
				{wg.Width, 0.0},
				{wg.Width, wg.Setback},
				{0.0, wg.Setback},
			},
		},
	}

	return []SetbackShade{
		{Window: w.ID, Shade: overhang},
		{Window: w.ID, Shade: leftFin},
		{Window: w.ID, Shade: rightFin},
		{Window: w.ID, Shade: sill},
	}
}

// derivedID deterministically derives the id of a generated element from
// its parent id and a suffix.
func derivedID(parent uuid.UUID, suffix string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s-%s", parent, suffix)))
}

// normalizeAngle wraps a value into the [start, end) interval.
func normalizeAngle(value, start, end float32) float32 {
	width := end - start
	offset := value - start
	return (offset - float32(math.Floor(float64(offset/width)))*width) + start
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
