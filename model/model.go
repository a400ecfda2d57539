package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/avillena/solshade/climate"
)

// Meta carries model-wide data.
type Meta struct {
	Name string `json:"name"`
	// Climate zone the building sits in
	Climate climate.Zone `json:"climate"`
}

// Model is the complete building description.
type Model struct {
	Meta    Meta       `json:"meta"`
	Spaces  []*Space   `json:"spaces"`
	Walls   []*Wall    `json:"walls"`
	Windows []*Window  `json:"windows"`
	Shades  []*Shade   `json:"shades"`
	WinCons []*WinCons `json:"wincons"`
}

// GetWall finds a wall by id.
func (m *Model) GetWall(id uuid.UUID) *Wall {
	for _, w := range m.Walls {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// GetSpace finds a space by id.
func (m *Model) GetSpace(id uuid.UUID) *Space {
	for _, s := range m.Spaces {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// GetWinCons finds a window construction by id.
func (m *Model) GetWinCons(id uuid.UUID) *WinCons {
	for _, c := range m.WinCons {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// GetWindowByName finds a window by name.
func (m *Model) GetWindowByName(name string) *Window {
	for _, w := range m.Windows {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// ARef is the reference floor area of the model: the useful floor area of
// every space, with multipliers applied, m2.
func (m *Model) ARef() float32 {
	var aref float32
	for _, s := range m.Spaces {
		aref += s.Area * s.Multiplier
	}
	return aref
}

// WindowsOfEnvelope lists the windows hosted on exterior walls.
func (m *Model) WindowsOfEnvelope() []*Window {
	var out []*Window
	for _, w := range m.Windows {
		wall := m.GetWall(w.Wall)
		if wall != nil && wall.Bounds == Exterior {
			out = append(out, w)
		}
	}
	return out
}

// WindowSetbackShades builds the synthetic reveal panels of every recessed
// window in the model.
func (m *Model) WindowSetbackShades() []SetbackShade {
	var out []SetbackShade
	for _, w := range m.Windows {
		wall := m.GetWall(w.Wall)
		if wall == nil {
			continue
		}
		out = append(out, w.ShadesForSetback(&wall.Geometry)...)
	}
	return out
}

// FromJSON decodes a model from its JSON representation.
func FromJSON(data []byte) (*Model, error) {
	m := &Model{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("unable to decode model: %v", err)
	}
	return m, nil
}

// AsJSON encodes the model to indented JSON.
func (m *Model) AsJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
