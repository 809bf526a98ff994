// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/venued/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "venue-cli"
	app.Usage = "venue custody operator tool"
	app.Version = Version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "deposit",
			Usage:     "place a token into custody",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*token payload `HEX`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "redeem",
			Usage:     "release the most recently deposited token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: " transfer the token to `ACCOUNT`",
				},
			},
			Action: runRedeem,
		},
		{
			Name:      "owned",
			Usage:     "list tokens held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `N`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " maximum records to output `N`",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "info",
			Usage:  "show the inventory state",
			Action: runInfo,
		},
	}

	// read the configuration before any command runs
	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		w := c.App.Writer

		verbose := c.GlobalBool("verbose")

		file := c.GlobalString("config-file")
		if "" == file {
			return fmt.Errorf("configuration file is required")
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
