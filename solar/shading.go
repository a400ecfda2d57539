package solar

import (
	"math"
	"runtime"
	"sync"

	"github.com/avillena/solshade/climate"
	"github.com/avillena/solshade/log"
	"github.com/avillena/solshade/model"
	"github.com/avillena/solshade/trace"
	"github.com/avillena/solshade/types"
)

var logger = log.New("solar")

const (
	// Max elements per BVH terminal node
	occluderLeafCap = 30
	// Ground reflectance used for the reflected irradiance share
	groundAlbedo = 0.2
	// Target spacing of the window sampling grid, m
	gridStep = 0.2
	// Sampling points per window axis
	gridMin = 5
	gridMax = 10
)

// RayDirToSun converts a sun position (azimuth from south, E+, W-; altitude
// over the horizon, both in degrees) to a unit direction pointing at the
// sun, in global coordinates (X east, Y north, Z up).
func RayDirToSun(azimuth, altitude float32) types.Vec3 {
	sazim, cazim := sincosd(azimuth)
	salt, calt := sincosd(altitude)
	return types.XYZ(calt*sazim, -calt*cazim, salt).Normalize()
}

func sincosd(deg float32) (float32, float32) {
	s, c := math.Sincos(float64(deg) * math.Pi / 180.0)
	return float32(s), float32(c)
}

// RayOriginsForWindow samples the glass pane of a window on a regular grid,
// returning the sample points in global coordinates. The pane sits at the
// window setback depth behind the host wall plane; sample points are cell
// centers of a grid of 5 to 10 points per axis, aiming at one point every
// 20 cm. Windows or walls without a complete geometric definition yield no
// points.
func RayOriginsForWindow(wall *model.Wall, w *model.Window) []types.Vec3 {
	wg := &w.Geometry
	if wg.Position == nil {
		return nil
	}
	toPoly := wall.Geometry.ToPolygonTransform()
	toGlobal := wall.Geometry.ToGlobalTransform()
	if toPoly == nil || toGlobal == nil {
		return nil
	}

	nx := gridPoints(wg.Width)
	ny := gridPoints(wg.Height)
	stepX := wg.Width / float32(nx)
	stepY := wg.Height / float32(ny)
	wpos := *wg.Position

	origins := make([]types.Vec3, 0, nx*ny)
	for j := 0; j < ny; j++ {
		y := wpos[1] + (float32(j)+0.5)*stepY
		for i := 0; i < nx; i++ {
			x := wpos[0] + (float32(i)+0.5)*stepX
			// Window position is given in wall local coordinates, the
			// placement transform works on polygon ones
			p := toPoly.Apply(types.XY(x, y))
			origins = append(origins, toGlobal.ApplyPoint(p.Vec3(-wg.Setback)))
		}
	}
	return origins
}

func gridPoints(dim float32) int {
	n := int(math.Round(float64(dim / gridStep)))
	if n < gridMin {
		return gridMin
	}
	if n > gridMax {
		return gridMax
	}
	return n
}

// SunlitFraction computes the fraction of the window sampling points that
// see the sun along rayDir, testing each sample ray against the candidate
// occluders. The window's host wall and the reveal panels of other windows
// are excluded from the candidates.
//
// Windows without a host wall or without placed geometry get full sun (1.0)
// with a warning; windows facing away from the sun get 0.0.
func SunlitFraction(m *model.Model, w *model.Window, rayOrigins []types.Vec3, rayDir types.Vec3, occluders []*Occluder) float32 {
	wall := m.GetWall(w.Wall)
	if wall == nil {
		logger.Warningf("window %s (%s) without a host wall, assuming full sun", w.Name, w.ID)
		return 1.0
	}
	if len(rayOrigins) == 0 {
		logger.Warningf("window %s (%s) without a complete geometric definition, assuming full sun", w.Name, w.ID)
		return 1.0
	}

	// Sun behind the window plane
	if wall.Geometry.Normal().Dot(rayDir) < 0.01 {
		return 0.0
	}

	candidates := make([]*Occluder, 0, len(occluders))
	for _, o := range occluders {
		if o.ID == wall.ID {
			continue
		}
		if o.LinkedTo != nil && *o.LinkedTo != w.ID {
			continue
		}
		candidates = append(candidates, o)
	}

	bvh := trace.BuildBVH(candidates, occluderLeafCap)
	hits := 0
	for _, origin := range rayOrigins {
		if _, hit := bvh.Intersects(trace.NewRay(origin, rayDir)); hit {
			hits++
		}
	}
	return 1.0 - float32(hits)/float32(len(rayOrigins))
}

// UpdateFShobst computes and stores the remote obstruction factor of every
// window in the model, weighting the sunlit fraction at each sun position of
// the representative day by its direct and diffuse irradiance on the window
// plane:
//
//	fshobst = sum(sunlit*dir + dif) / sum(dir + dif)
//
// Factors are rounded to 2 decimals. The caller supplies the sun-position
// samples for the representative day (see climate.JulyRadData) and the
// latitude they were derived for; an empty sample set makes every window
// fall back to 1.0. Windows are evaluated concurrently.
func UpdateFShobst(m *model.Model, raddata []climate.RadData, latitude float32) {
	if len(raddata) == 0 {
		logger.Warningf("no solar samples for climate zone %q, assuming full sun", m.Meta.Climate)
		for _, w := range m.Windows {
			w.FShobst = 1.0
		}
		return
	}
	occluders := CollectOccluders(m)

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())
	for _, win := range m.Windows {
		wall := m.GetWall(win.Wall)
		if wall == nil {
			logger.Warningf("window %s (%s) without a host wall, assuming full sun", win.Name, win.ID)
			win.FShobst = 1.0
			continue
		}

		win, wall := win, wall
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			win.FShobst = windowFShobst(m, win, wall, raddata, latitude, occluders)
		}()
	}
	wg.Wait()
}

func windowFShobst(m *model.Model, win *model.Window, wall *model.Wall, raddata []climate.RadData, latitude float32, occluders []*Occluder) float32 {
	origins := RayOriginsForWindow(wall, win)

	var sunlit, total float32
	for _, d := range raddata {
		rad := climate.RadiationForSurface(
			climate.NDayFromMD(d.Month, d.Day), d.Hour,
			climate.SolarRadiation{Dir: d.Dir, Dif: d.Dif},
			latitude, wall.Geometry.Tilt, wall.Geometry.Azimuth, groundAlbedo)
		fsunlit := SunlitFraction(m, win, origins, RayDirToSun(d.Azimuth, d.Altitude), occluders)
		sunlit += fsunlit*rad.Dir + rad.Dif
		total += rad.Dir + rad.Dif
	}
	if total <= 0.0 {
		return 1.0
	}
	return fround2(sunlit / total)
}

func fround2(v float32) float32 {
	return float32(math.Round(float64(v)*100.0)) / 100.0
}
