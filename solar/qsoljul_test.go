package solar

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/avillena/solshade/climate"
	"github.com/avillena/solshade/model"
	"github.com/avillena/solshade/types"
)

func TestTotalRadiationInJulyByOrientation(t *testing.T) {
	totradjul := TotalRadiationInJulyByOrientation(climate.D3)
	if totradjul == nil {
		t.Fatal("expected irradiation totals for a known zone")
	}
	if len(totradjul) != len(orientationSurfaces) {
		t.Fatalf("expected %d orientations; got %d", len(orientationSurfaces), len(totradjul))
	}

	for orientation, rad := range totradjul {
		if rad <= 0 {
			t.Fatalf("expected positive irradiation for %s; got %f", orientation, rad)
		}
	}

	// With the high july sun the horizontal plane collects the most and the
	// north wall the least
	if totradjul[model.Horizontal] <= totradjul[model.South] {
		t.Fatal("expected the horizontal plane to beat the south wall in july")
	}
	if totradjul[model.North] >= totradjul[model.East] {
		t.Fatal("expected the north wall to collect less than the east wall")
	}

	if got := TotalRadiationInJulyByOrientation(climate.Zone("Z9")); got != nil {
		t.Fatal("expected no totals for an unknown zone")
	}
}

func TestQSolJul(t *testing.T) {
	space := &model.Space{ID: uuid.New(), Name: "P01_E01", Area: 100, Multiplier: 1}
	cons := &model.WinCons{ID: uuid.New(), Name: "glazing", GglShWi: 0.6, FF: 0.2}

	wallPos := types.XYZ(0, 0, 0)
	wall := &model.Wall{
		ID:     uuid.New(),
		Name:   "P01_E01_PE001",
		Bounds: model.Exterior,
		Space:  space.ID,
		Geometry: model.WallGeometry{
			Tilt:     90,
			Azimuth:  0,
			Position: &wallPos,
			Polygon:  []types.Vec2{{0, 0}, {4, 0}, {4, 3}, {0, 3}},
		},
	}
	interiorWall := &model.Wall{
		ID:     uuid.New(),
		Name:   "P01_E01_PE002",
		Bounds: model.Interior,
		Space:  space.ID,
	}

	wpos := types.XY(1, 1)
	win := &model.Window{
		ID:      uuid.New(),
		Name:    "P01_E01_PE001_V",
		Wall:    wall.ID,
		Cons:    cons.ID,
		FShobst: 0.5,
		Geometry: model.WindowGeometry{
			Position: &wpos,
			Width:    2,
			Height:   1,
		},
	}
	interiorWin := &model.Window{
		ID:      uuid.New(),
		Name:    "P01_E01_PE002_V",
		Wall:    interiorWall.ID,
		Cons:    cons.ID,
		FShobst: 1.0,
		Geometry: model.WindowGeometry{
			Position: &wpos,
			Width:    1,
			Height:   1,
		},
	}

	m := &model.Model{
		Meta:    model.Meta{Name: "test", Climate: climate.D3},
		Spaces:  []*model.Space{space},
		Walls:   []*model.Wall{wall, interiorWall},
		Windows: []*model.Window{win, interiorWin},
		WinCons: []*model.WinCons{cons},
	}

	totradjul := map[model.Orientation]float32{model.South: 200}
	data := QSolJul(m, totradjul)

	// gains = fshobst * ggl * (1 - ff) * area * irradiation
	wantGains := float32(0.5 * 0.6 * 0.8 * 2 * 200)
	if math.Abs(float64(data.TotGains-wantGains)) > 1e-3 {
		t.Fatalf("expected gains %f; got %f", wantGains, data.TotGains)
	}
	if data.TotArea != 2 {
		t.Fatalf("expected the interior window to be excluded; got area %f", data.TotArea)
	}
	if data.ARef != 100 {
		t.Fatalf("expected reference area 100; got %f", data.ARef)
	}
	if math.Abs(float64(data.QSolJul-wantGains/100)) > 1e-5 {
		t.Fatalf("expected q_sol;jul %f; got %f", wantGains/100, data.QSolJul)
	}

	south := data.Detail[model.South]
	if south == nil {
		t.Fatal("expected a south detail entry")
	}
	if south.Irradiance != 200 {
		t.Fatalf("expected irradiation 200; got %f", south.Irradiance)
	}
	if south.FShobstMean != 0.5 || south.GglShWiMean != 0.6 {
		t.Fatalf("expected weighted means 0.5/0.6; got %f/%f", south.FShobstMean, south.GglShWiMean)
	}
	if math.Abs(float64(south.FFMean-0.2)) > 1e-6 {
		t.Fatalf("expected mean frame fraction 0.2; got %f", south.FFMean)
	}

	// Space multipliers scale both the gains and the area
	space.Multiplier = 2
	data = QSolJul(m, totradjul)
	if data.TotArea != 4 {
		t.Fatalf("expected multiplied area 4; got %f", data.TotArea)
	}
	if math.Abs(float64(data.TotGains-2*wantGains)) > 1e-3 {
		t.Fatalf("expected multiplied gains %f; got %f", 2*wantGains, data.TotGains)
	}
}

func TestQSolJulMissingData(t *testing.T) {
	m := testModel(0, false)
	m.Windows[0].FShobst = 1.0

	// Orientations without irradiation data contribute nothing
	data := QSolJul(m, map[model.Orientation]float32{model.North: 100})
	if data.TotGains != 0 || len(data.Detail) != 0 {
		t.Fatalf("expected no gains without south data; got %f", data.TotGains)
	}

	// Windows without a known construction are skipped
	m.Windows[0].Cons = uuid.New()
	data = QSolJul(m, map[model.Orientation]float32{model.South: 100})
	if data.TotGains != 0 {
		t.Fatalf("expected no gains without a construction; got %f", data.TotGains)
	}
}
