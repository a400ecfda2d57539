package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/avillena/solshade/climate"
	"github.com/avillena/solshade/model"
	"github.com/avillena/solshade/solar"
)

// Compute the remote obstruction factor of every window in a model.
func ComputeFShobst(ctx *cli.Context) error {
	setupLogging(ctx)

	m, err := loadModel(ctx)
	if err != nil {
		return err
	}

	raddata := climate.JulyRadData(m.Meta.Climate)
	meta, _ := climate.Metadata(m.Meta.Climate)

	start := time.Now()
	solar.UpdateFShobst(m, raddata, meta.Latitude)
	logger.Noticef("computed %d window factors in %d ms", len(m.Windows), time.Since(start).Milliseconds())

	displayFShobst(m)

	if outFile := ctx.String("out"); outFile != "" {
		data, err := m.AsJSON()
		if err != nil {
			return err
		}
		if err = os.WriteFile(outFile, data, 0644); err != nil {
			return err
		}
		logger.Noticef("wrote updated model to %s", outFile)
	}
	return nil
}

func displayFShobst(m *model.Model) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Window", "Wall", "Orient.", "A (m2)", "Setback (m)", "fshobst"})
	for _, w := range m.Windows {
		wallName, orient := "-", "-"
		if wall := m.GetWall(w.Wall); wall != nil {
			wallName = wall.Name
			orient = wall.Orientation().String()
		}
		table.Append([]string{
			w.Name,
			wallName,
			orient,
			fmt.Sprintf("%.2f", w.Area()),
			fmt.Sprintf("%.2f", w.Geometry.Setback),
			fmt.Sprintf("%.2f", w.FShobst),
		})
	}

	table.Render()
	logger.Noticef("window obstruction factors\n%s", buf.String())
}

func loadModel(ctx *cli.Context) (*model.Model, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("expected a single model file argument")
	}
	modelFile := ctx.Args().First()
	data, err := os.ReadFile(modelFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %v", modelFile, err)
	}
	return model.FromJSON(data)
}
