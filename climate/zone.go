// Package climate provides the CTE climate zone catalog, solar geometry and
// the representative-day irradiance samples consumed by the shading engine.
package climate

import (
	"fmt"
	"strings"
)

// Zone is a CTE climate zone (12 peninsular climates plus 20 Canary Islands
// variants).
type Zone string

const (
	A1c    Zone = "A1c"
	A2c    Zone = "A2c"
	A3c    Zone = "A3c"
	A4c    Zone = "A4c"
	Alfa1c Zone = "Alfa1c"
	Alfa2c Zone = "Alfa2c"
	Alfa3c Zone = "Alfa3c"
	Alfa4c Zone = "Alfa4c"
	B1c    Zone = "B1c"
	B2c    Zone = "B2c"
	B3c    Zone = "B3c"
	B4c    Zone = "B4c"
	C1c    Zone = "C1c"
	C2c    Zone = "C2c"
	C3c    Zone = "C3c"
	C4c    Zone = "C4c"
	D1c    Zone = "D1c"
	D2c    Zone = "D2c"
	D3c    Zone = "D3c"
	E1c    Zone = "E1c"
	A3     Zone = "A3"
	A4     Zone = "A4"
	B3     Zone = "B3"
	B4     Zone = "B4"
	C1     Zone = "C1"
	C2     Zone = "C2"
	C3     Zone = "C3"
	C4     Zone = "C4"
	D1     Zone = "D1"
	D2     Zone = "D2"
	D3     Zone = "D3"
	E1     Zone = "E1"
)

// Zones lists every defined climate zone.
var Zones = []Zone{
	A1c, A2c, A3c, A4c, Alfa1c, Alfa2c, Alfa3c, Alfa4c,
	B1c, B2c, B3c, B4c, C1c, C2c, C3c, C4c, D1c, D2c, D3c, E1c,
	A3, A4, B3, B4, C1, C2, C3, C4, D1, D2, D3, E1,
}

// ParseZone converts a string to a known climate zone.
func ParseZone(s string) (Zone, error) {
	for _, z := range Zones {
		if string(z) == s {
			return z, nil
		}
	}
	return "", fmt.Errorf("unknown climate zone: %q", s)
}

// Canary reports whether the zone is a Canary Islands variant.
func (z Zone) Canary() bool {
	return strings.HasSuffix(string(z), "c")
}

// Meta carries general data for a climate zone reference station.
type Meta struct {
	// Reference .met dataset name
	MetName string
	Zone    Zone
	// Latitude of the reference station, degrees north
	Latitude float32
	// Longitude of the reference station, degrees east
	Longitude float32
	// Altitude of the reference station, m
	Altitude float32
	// Reference longitude of the time zone, degrees east
	RefLong float32
}

// Metadata returns the reference station data for a zone. The reference
// stations are shared: one for the peninsular climates and one for the
// Canary Islands variants.
func Metadata(z Zone) (Meta, bool) {
	if _, err := ParseZone(string(z)); err != nil {
		return Meta{}, false
	}
	if z.Canary() {
		return Meta{
			MetName:   fmt.Sprintf("zona%s.met", z),
			Zone:      z,
			Latitude:  28.325,
			Longitude: -16.36666,
			Altitude:  30.0,
			RefLong:   0.0,
		}, true
	}
	return Meta{
		MetName:   fmt.Sprintf("zona%s.met", z),
		Zone:      z,
		Latitude:  40.68333,
		Longitude: -4.133333,
		Altitude:  667.0,
		RefLong:   15.0,
	}, true
}
