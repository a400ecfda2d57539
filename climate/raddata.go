package climate

// RadData is one sun-position sample of the representative day (21 July):
// clock data, sun position and horizontal irradiance for the zone's
// reference station.
type RadData struct {
	// Month of the year [1, 12]
	Month int
	// Day of the month [1, 31]
	Day int
	// Solar hour [1.0, 24.0]
	Hour float32
	// Solar azimuth, degrees (S=0, E+, W-)
	Azimuth float32
	// Solar altitude, degrees (horizon 0, zenith 90)
	Altitude float32
	// Direct irradiance on the horizontal plane, W/m2
	Dir float32
	// Diffuse irradiance on the horizontal plane, W/m2
	Dif float32
}

// Clear-sky beam coefficients for July (apparent extraterrestrial
// irradiance, extinction coefficient and diffuse-to-beam ratio).
const (
	julyClearSkyA float32 = 1085.0
	julyClearSkyB float32 = 0.207
	julyClearSkyC float32 = 0.136
)

const (
	julyMonth = 7
	julyDay   = 21
)

// JulyRadData builds the hourly sun-position and irradiance samples for the
// representative day (21 July, daylight hours) of a climate zone. It returns
// nil for unknown zones.
//
// The samples are derived for the zone's reference station latitude from the
// solar geometry above and a clear-sky irradiance model with July
// coefficients. Each call returns a fresh slice; callers hand it to the
// evaluation entry points instead of sharing package state.
func JulyRadData(zone Zone) []RadData {
	meta, ok := Metadata(zone)
	if !ok {
		return nil
	}

	declination := Declination(NDayFromMD(julyMonth, julyDay))
	var samples []RadData
	for h := 1; h <= 24; h++ {
		hour := float32(h)
		pos := SunPositionAt(declination, HourAngle(hour), meta.Latitude)
		if pos.Altitude <= 0.0 {
			continue
		}
		beam := julyClearSkyA * exp32(-julyClearSkyB/sind(pos.Altitude))
		samples = append(samples, RadData{
			Month:    julyMonth,
			Day:      julyDay,
			Hour:     hour,
			Azimuth:  pos.Azimuth,
			Altitude: pos.Altitude,
			Dir:      beam * sind(pos.Altitude),
			Dif:      julyClearSkyC * beam,
		})
	}
	return samples
}
