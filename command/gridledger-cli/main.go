// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/openmicrogrid/gridledgerd/identity"
)

type metadata struct {
	connect  string
	identity identity.Principal
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "gridledger-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: "*gridledgerd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " base58 `PRINCIPAL` used as the submitter of write operations",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "status",
			Usage:  "display gridledgerd status",
			Action: runStatus,
		},
		{
			Name:      "register",
			Usage:     "register a new grid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "location, l",
					Value: "",
					Usage: "*hex SHA3-256 location hash `HEX`",
				},
				cli.Uint64Flag{
					Name:  "capacity, q",
					Value: 0,
					Usage: "*initial grid capacity `NUMBER`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "grid",
			Usage:     "display one grid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "grid, g",
					Value: 0,
					Usage: "*grid identifier `NUMBER`",
				},
			},
			Action: runGrid,
		},
		{
			Name:      "efficiency",
			Usage:     "overwrite a grid's efficiency score, operator only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "grid, g",
					Value: 0,
					Usage: "*grid identifier `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "score, s",
					Value: 0,
					Usage: "*new efficiency score, 0 to 1000 `NUMBER`",
				},
			},
			Action: runEfficiency,
		},
		{
			Name:      "track",
			Usage:     "record resource provenance on a grid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*resource type [energy|water|data]",
				},
				cli.Uint64Flag{
					Name:  "grid, g",
					Value: 0,
					Usage: "*origin grid identifier `NUMBER`",
				},
				cli.StringFlag{
					Name:  "method, m",
					Value: "",
					Usage: " generation method `STRING`",
				},
				cli.Uint64Flag{
					Name:  "carbon, f",
					Value: 0,
					Usage: " carbon footprint `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "harmony, y",
					Value: 0,
					Usage: " harmony metric `NUMBER`",
				},
				cli.StringFlag{
					Name:  "metadata, d",
					Value: "",
					Usage: " hex SHA3-256 metadata hash `HEX`",
				},
			},
			Action: runTrack,
		},
		{
			Name:      "resource",
			Usage:     "display one provenance record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "resource, r",
					Value: 0,
					Usage: "*resource identifier `NUMBER`",
				},
			},
			Action: runResource,
		},
		{
			Name:      "stake",
			Usage:     "record a governance deposit on a grid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "grid, g",
					Value: 0,
					Usage: "*grid identifier `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to deposit `NUMBER`",
				},
			},
			Action: runStake,
		},
		{
			Name:      "balance",
			Usage:     "display the cumulative stake on a grid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "grid, g",
					Value: 0,
					Usage: "*grid identifier `NUMBER`",
				},
				cli.StringFlag{
					Name:  "staker, s",
					Value: "",
					Usage: " base58 staker `PRINCIPAL` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "connect-grids",
			Usage:     "create or overwrite a directional route between grids",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "from, f",
					Value: 0,
					Usage: "*source grid identifier `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "to, t",
					Value: 0,
					Usage: "*destination grid identifier `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "capacity, q",
					Value: 0,
					Usage: "*route capacity `NUMBER`",
				},
			},
			Action: runConnect,
		},
		{
			Name:      "cascade",
			Usage:     "record a resource transfer over a route",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "from, f",
					Value: 0,
					Usage: "*source grid identifier `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "to, t",
					Value: 0,
					Usage: "*destination grid identifier `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to transfer `NUMBER`",
				},
			},
			Action: runCascade,
		},
		{
			Name:      "route",
			Usage:     "display the route between two grids",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "from, f",
					Value: 0,
					Usage: "*source grid identifier `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "to, t",
					Value: 0,
					Usage: "*destination grid identifier `NUMBER`",
				},
			},
			Action: runRoute,
		},
		{
			Name:      "innovate",
			Usage:     "credit an innovation adoption to an operator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "innovator, o",
					Value: "",
					Usage: " base58 innovator `PRINCIPAL` default is global identity",
				},
			},
			Action: runInnovate,
		},
		{
			Name:      "reputation",
			Usage:     "display operator statistics",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: " base58 operator `PRINCIPAL` default is global identity",
				},
			},
			Action: runReputation,
		},
		{
			Name:      "challenge",
			Usage:     "file a seasonal efficiency claim",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "season, s",
					Value: 0,
					Usage: "*season identifier `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "improvement, m",
					Value: 0,
					Usage: " claimed efficiency improvement `NUMBER`",
				},
			},
			Action: runChallenge,
		},
		{
			Name:      "participation",
			Usage:     "display a seasonal claim",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "season, s",
					Value: 0,
					Usage: "*season identifier `NUMBER`",
				},
				cli.StringFlag{
					Name:  "participant, p",
					Value: "",
					Usage: " base58 participant `PRINCIPAL` default is global identity",
				},
			},
			Action: runParticipation,
		},
		{
			Name:   "toggle",
			Usage:  "flip the protocol kill switch, owner only",
			Action: runToggle,
		},
		{
			Name:      "global-efficiency",
			Usage:     "overwrite the global efficiency scalar, owner only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "score, s",
					Value: 0,
					Usage: "*new global efficiency `NUMBER`",
				},
			},
			Action: runGlobalEfficiency,
		},
		{
			Name:  "version",
			Usage: "display gridledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// check connection parameters
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress connection checks for certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		// identity is optional, read only commands do not need one
		principal, err := checkOptionalPrincipal(c.GlobalString("identity"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "connect: %q\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect:  connect,
			identity: principal,
			verbose:  verbose,
			e:        e,
			w:        w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
