package climate

import "math"

// SolarRadiation holds direct and diffuse irradiance on a plane, W/m2.
type SolarRadiation struct {
	// Direct irradiance, W/m2
	Dir float32
	// Diffuse irradiance, W/m2
	Dif float32
}

// SunPosition of the solar beam.
type SunPosition struct {
	// Solar azimuth, degrees [-180, +180], from south (0), east+ west-
	Azimuth float32
	// Solar altitude over the horizontal plane, degrees [0, +90]
	Altitude float32
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// NDayFromMD computes the ordinal day of the year [1, 365] for a date.
func NDayFromMD(month, day int) int {
	nday := day
	for _, md := range monthDays[:month-1] {
		nday += md
	}
	return nday
}

// Trigonometric helpers working in degrees, as the reference formulation
// does.
func sind(deg float32) float32 {
	return float32(math.Sin(float64(deg) * math.Pi / 180.0))
}

func cosd(deg float32) float32 {
	return float32(math.Cos(float64(deg) * math.Pi / 180.0))
}

func asind(v float32) float32 {
	return float32(math.Asin(float64(v)) * 180.0 / math.Pi)
}

func acosd(v float32) float32 {
	return float32(math.Acos(float64(v)) * 180.0 / math.Pi)
}

func exp32(v float32) float32 {
	return float32(math.Exp(float64(v)))
}

// Declination computes the solar declination (delta) in degrees for a day
// of the year: the angular position of the sun at solar noon with respect
// to the equatorial plane, north positive, -23.45 <= delta <= 23.45.
func Declination(nday int) float32 {
	rdc := float32(nday) * 360.0 / 365.0
	return 0.33281 - 22.984*cosd(rdc) - 0.3499*cosd(2.0*rdc) - 0.1398*cosd(3.0*rdc) +
		3.7872*sind(rdc) + 0.03205*sind(2.0*rdc) + 0.07187*sind(3.0*rdc)
}

// HourAngle computes the solar hour angle (omega) in degrees [-180, 180]
// for a solar time in hours [1, 24].
func HourAngle(tsol float32) float32 {
	w := (12.5 - tsol) * 180.0 / 12.0
	switch {
	case w > 180.0:
		return w - 360.0
	case w < -180.0:
		return w + 360.0
	default:
		return w
	}
}

// SolarAltitude computes the angle between the solar beam and the
// horizontal plane, degrees [0, 90]. Values below the horizon clamp to 0.
func SolarAltitude(declination, hourangle, latitude float32) float32 {
	aSol := asind(sind(declination)*sind(latitude) + cosd(declination)*cosd(latitude)*cosd(hourangle))
	if aSol >= 0.0001 {
		return aSol
	}
	return 0.0
}

// SolarAzimuth computes the solar azimuth in degrees [-180, 180] from south
// (0), east positive, west negative.
func SolarAzimuth(declination, hourangle, altsol, latitude float32) float32 {
	cos1 := cosd(asind(sind(altsol)))
	sinAzimaux := cosd(declination) * sind(180.0-hourangle) / cos1
	cosAzimaux := (cosd(latitude)*sind(declination) + sind(latitude)*cosd(declination)*cosd(180.0-hourangle)) / cos1
	azimaux := asind(cosd(declination)*sind(180.0-hourangle)) / cos1

	switch {
	case sinAzimaux >= 0.0 && cosAzimaux > 0.0:
		return 180.0 - azimaux
	case cosAzimaux < 0.0:
		return azimaux
	default:
		return -(180.0 + azimaux)
	}
}

// SunPositionAt computes the sun position for a declination, hour angle and
// latitude.
func SunPositionAt(declination, hourangle, latitude float32) SunPosition {
	altitude := SolarAltitude(declination, hourangle, latitude)
	azimuth := SolarAzimuth(declination, hourangle, altitude, latitude)
	return SunPosition{Azimuth: azimuth, Altitude: altitude}
}

// IncidenceAngle computes the angle between the solar beam and the normal
// of an inclined, oriented surface, degrees [0, 180].
//
// surfTilt: tilt from horizontal-up, degrees [0, 180]
// surfAzimuth: deviation from south (E+, W-), degrees [-180, 180]
func IncidenceAngle(declination, hourangle, latitude, surfTilt, surfAzimuth float32) float32 {
	sd, cd := sind(declination), cosd(declination)
	sh, ch := sind(hourangle), cosd(hourangle)
	sw, cw := sind(latitude), cosd(latitude)
	sb, cb := sind(surfTilt), cosd(surfTilt)
	sg, cg := sind(surfAzimuth), cosd(surfAzimuth)
	return acosd(sd*sw*cb - sd*cw*sb*cg + cd*cw*cb*ch + cd*sw*sb*cg*ch + cd*sb*sg*sh)
}

// BeamIrradiance converts direct irradiance on the horizontal plane to
// direct normal (beam) irradiance, W/m2. The altitude is floored to avoid
// the singularity at the horizon.
func BeamIrradiance(dirHorizontal, altsol float32) float32 {
	if altsol < 0.01 {
		altsol = 0.01
	}
	return dirHorizontal / sind(altsol)
}

// RadiationForSurface projects horizontal direct and diffuse irradiance
// onto an inclined, oriented surface using an isotropic sky and a ground
// reflection term, W/m2.
//
// nday: day of the year; hour: solar time [1, 24]; gsol: horizontal
// irradiance; albedo: ground reflectance [0.0, 1.0].
func RadiationForSurface(nday int, hour float32, gsol SolarRadiation, latitude, surfTilt, surfAzimuth, albedo float32) SolarRadiation {
	declination := Declination(nday)
	hourangle := HourAngle(hour)
	altsol := SolarAltitude(declination, hourangle, latitude)
	angle := IncidenceAngle(declination, hourangle, latitude, surfTilt, surfAzimuth)

	gsolbeam := BeamIrradiance(gsol.Dir, altsol)

	// Direct irradiance through the incidence cosine
	idir := gsolbeam * cosd(angle)
	if idir < 0 {
		idir = 0
	}
	// Isotropic sky diffuse
	idif := gsol.Dif * (1.0 + cosd(surfTilt)) / 2.0
	// Ground reflected share of the global horizontal irradiance
	idifgrnd := (gsol.Dir + gsol.Dif) * albedo * (1.0 - cosd(surfTilt)) / 2.0

	return SolarRadiation{Dir: idir, Dif: idif + idifgrnd}
}
