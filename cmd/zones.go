package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/avillena/solshade/climate"
)

// List the known climate zones and their reference stations.
func ListZones(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Zone", "Canary", "Latitude", "Longitude", "Altitude (m)", "Dataset"})
	for _, z := range climate.Zones {
		meta, ok := climate.Metadata(z)
		if !ok {
			continue
		}
		table.Append([]string{
			string(z),
			fmt.Sprintf("%t", z.Canary()),
			fmt.Sprintf("%.3f", meta.Latitude),
			fmt.Sprintf("%.3f", meta.Longitude),
			fmt.Sprintf("%.0f", meta.Altitude),
			meta.MetName,
		})
	}

	table.Render()
	logger.Noticef("known climate zones\n%s", buf.String())

	return nil
}
