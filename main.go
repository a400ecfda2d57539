package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/avillena/solshade/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "solshade"
	app.Usage = "compute solar shading factors for building models"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "fshobst",
			Usage: "compute window obstruction factors",
			Description: `
Load a building model from a JSON file, build the occluder set from its
walls, shades and window reveals, and compute the remote obstruction factor
of every window over the 21 July sun positions of the model climate zone.

The factors are printed as a table; with --out the updated model is written
back to a JSON file.`,
			ArgsUsage: "model.json",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "filename for the updated model",
				},
			},
			Action: cmd.ComputeFShobst,
		},
		{
			Name:      "report",
			Usage:     "report the july solar control indicator (q_sol;jul)",
			ArgsUsage: "model.json",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "update, u",
					Usage: "recompute obstruction factors before reporting",
				},
			},
			Action: cmd.Report,
		},
		{
			Name:   "zones",
			Usage:  "list known climate zones",
			Action: cmd.ListZones,
		},
	}

	app.Run(os.Args)
}
