package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/avillena/solshade/climate"
	"github.com/avillena/solshade/model"
	"github.com/avillena/solshade/solar"
)

// Reporting order of the orientation breakdown.
var reportOrientations = []model.Orientation{
	model.North, model.NorthEast, model.East, model.SouthEast,
	model.South, model.SouthWest, model.West, model.NorthWest,
	model.Horizontal,
}

// Report the July solar control indicator q_sol;jul of a model.
func Report(ctx *cli.Context) error {
	setupLogging(ctx)

	m, err := loadModel(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("update") {
		raddata := climate.JulyRadData(m.Meta.Climate)
		meta, _ := climate.Metadata(m.Meta.Climate)
		solar.UpdateFShobst(m, raddata, meta.Latitude)
	}

	totradjul := solar.TotalRadiationInJulyByOrientation(m.Meta.Climate)
	if totradjul == nil {
		return fmt.Errorf("no solar data for climate zone %q", m.Meta.Climate)
	}
	data := solar.QSolJul(m, totradjul)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Orient.", "A (m2)", "H (kWh/m2)", "fshobst", "ggl;sh;wi", "FF", "Q (kWh)"})
	for _, orientation := range reportOrientations {
		d := data.Detail[orientation]
		if d == nil {
			continue
		}
		table.Append([]string{
			orientation.String(),
			fmt.Sprintf("%.2f", d.Area),
			fmt.Sprintf("%.2f", d.Irradiance),
			fmt.Sprintf("%.2f", d.FShobstMean),
			fmt.Sprintf("%.2f", d.GglShWiMean),
			fmt.Sprintf("%.2f", d.FFMean),
			fmt.Sprintf("%.2f", d.Gains),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%.2f", data.TotArea),
		"", "", "", "",
		fmt.Sprintf("%.2f", data.TotGains),
	})

	table.Render()
	logger.Noticef("july solar gains through envelope windows (%s)\n%s", m.Meta.Climate, buf.String())
	logger.Noticef("q_sol;jul = %.2f kWh/m2 month (A_ref = %.2f m2)", data.QSolJul, data.ARef)

	return nil
}
