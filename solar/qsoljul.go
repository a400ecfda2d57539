package solar

import (
	"github.com/avillena/solshade/climate"
	"github.com/avillena/solshade/model"
)

// Surface tilt and azimuth of each reporting orientation, degrees.
var orientationSurfaces = map[model.Orientation][2]float32{
	model.North:      {90.0, 180.0},
	model.NorthEast:  {90.0, 135.0},
	model.East:       {90.0, 90.0},
	model.SouthEast:  {90.0, 45.0},
	model.South:      {90.0, 0.0},
	model.SouthWest:  {90.0, -45.0},
	model.West:       {90.0, -90.0},
	model.NorthWest:  {90.0, -135.0},
	model.Horizontal: {0.0, 0.0},
}

// TotalRadiationInJulyByOrientation accumulates the hourly irradiance of the
// representative day over a whole July, for a vertical surface on each
// cardinal orientation plus the horizontal plane, kWh/m2 month. Returns nil
// for zones without solar samples.
func TotalRadiationInJulyByOrientation(zone climate.Zone) map[model.Orientation]float32 {
	raddata := climate.JulyRadData(zone)
	if len(raddata) == 0 {
		return nil
	}
	meta, _ := climate.Metadata(zone)

	out := make(map[model.Orientation]float32, len(orientationSurfaces))
	for orientation, surf := range orientationSurfaces {
		var wh float32
		for _, d := range raddata {
			rad := climate.RadiationForSurface(
				climate.NDayFromMD(d.Month, d.Day), d.Hour,
				climate.SolarRadiation{Dir: d.Dir, Dif: d.Dif},
				meta.Latitude, surf[0], surf[1], groundAlbedo)
			wh += rad.Dir + rad.Dif
		}
		// One sample per hour of the representative day, 31 days in July
		out[orientation] = wh * 31.0 / 1000.0
	}
	return out
}

// QSolJulDetail accumulates the July solar gains of the envelope windows
// sharing an orientation.
type QSolJulDetail struct {
	// Solar gains, kWh/month
	Gains float32
	// Glazed area with space multipliers applied, m2
	Area float32
	// July irradiation on the orientation, kWh/m2 month
	Irradiance float32
	// Area weighted mean remote obstruction factor
	FShobstMean float32
	// Area weighted mean solar factor
	GglShWiMean float32
	// Area weighted mean frame fraction
	FFMean float32
}

// QSolJulData is the July solar control indicator of a model.
type QSolJulData struct {
	// Solar control indicator q_sol;jul, kWh/m2 month
	QSolJul float32
	// Total solar gains through envelope windows, kWh/month
	TotGains float32
	// Total glazed area, m2
	TotArea float32
	// Reference floor area the indicator is normalized by, m2
	ARef float32
	// Per orientation breakdown
	Detail map[model.Orientation]*QSolJulDetail
}

// QSolJul computes the July solar control indicator of the model from the
// stored window obstruction factors and the July irradiation totals per
// orientation: the solar gains through every envelope window, normalized by
// the reference floor area.
func QSolJul(m *model.Model, totradjul map[model.Orientation]float32) *QSolJulData {
	data := &QSolJulData{
		ARef:   m.ARef(),
		Detail: make(map[model.Orientation]*QSolJulDetail),
	}

	for _, win := range m.Windows {
		wall := m.GetWall(win.Wall)
		if wall == nil || wall.Bounds != model.Exterior {
			continue
		}
		cons := m.GetWinCons(win.Cons)
		if cons == nil {
			logger.Warningf("window %s (%s) without a known construction, skipping", win.Name, win.ID)
			continue
		}
		orientation := wall.Orientation()
		radjul, ok := totradjul[orientation]
		if !ok {
			continue
		}

		multiplier := float32(1.0)
		if space := m.GetSpace(wall.Space); space != nil {
			multiplier = space.Multiplier
		}
		area := win.Area() * multiplier
		gains := win.FShobst * cons.GglShWi * (1.0 - cons.FF) * area * radjul

		d := data.Detail[orientation]
		if d == nil {
			d = &QSolJulDetail{Irradiance: radjul}
			data.Detail[orientation] = d
		}
		d.Gains += gains
		d.Area += area
		d.FShobstMean += win.FShobst * area
		d.GglShWiMean += cons.GglShWi * area
		d.FFMean += cons.FF * area

		data.TotGains += gains
		data.TotArea += area
	}

	for _, d := range data.Detail {
		if d.Area > 0.0 {
			d.FShobstMean /= d.Area
			d.GglShWiMean /= d.Area
			d.FFMean /= d.Area
		}
	}
	if data.ARef > 0.0 {
		data.QSolJul = data.TotGains / data.ARef
	}
	return data
}
